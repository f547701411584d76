// Package flatten turns a two-level configuration tree into storable
// [models.ConfigRecord] rows.
package flatten

import (
	"github.com/MKhiriev/config-seeder/internal/value"
	"github.com/MKhiriev/config-seeder/models"
)

// Flatten emits one record per category/key pair of tree, categories first in
// their order and keys in their order within each category.
//
// Flattening stops at depth two: a leaf that is itself an object or an array
// is encoded whole into the record value. A category whose value is not an
// object yields no records; the loaders reject such trees before they get
// here.
func Flatten(tree *value.Object) []models.ConfigRecord {
	records := make([]models.ConfigRecord, 0, countLeaves(tree))

	tree.Range(func(category string, entries value.Value) bool {
		obj, ok := entries.AsObject()
		if !ok {
			return true
		}

		obj.Range(func(key string, leaf value.Value) bool {
			records = append(records, models.ConfigRecord{
				Key:      key,
				Value:    value.Encode(leaf),
				Category: category,
			})
			return true
		})
		return true
	})

	return records
}

func countLeaves(tree *value.Object) int {
	n := 0
	tree.Range(func(_ string, entries value.Value) bool {
		if obj, ok := entries.AsObject(); ok {
			n += obj.Len()
		}
		return true
	})
	return n
}
