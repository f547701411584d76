package models

// ConfigRecord is a single row of the configs table produced by flattening
// a configuration tree.
//
// Records are built fresh on every seeding run and are never modified after
// construction.
type ConfigRecord struct {
	// Key is the second-level key inside Category.
	Key string `json:"key" db:"key"`

	// Value is the canonical JSON encoding of the leaf value. Strings are
	// stored quoted so that "1" and 1 stay distinguishable.
	Value string `json:"value" db:"value"`

	// Category is the top-level key the record was found under.
	Category string `json:"category" db:"category"`
}

// TableName returns the name of the database table
// associated with the ConfigRecord model.
func (r ConfigRecord) TableName() string {
	return "configs"
}
