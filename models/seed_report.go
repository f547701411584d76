// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FailedRecord describes a record the sink refused to store.
type FailedRecord struct {
	// Record is the record that was offered to the sink.
	Record ConfigRecord `json:"record"`

	// Reason is the error text returned by the sink.
	Reason string `json:"reason"`
}

// SeedReport summarizes a completed seeding run.
//
// A run that returns a SeedReport always finished: every record was offered
// to the sink exactly once. Failed > 0 does not make the run fail.
type SeedReport struct {
	// RunID identifies the run in log entries.
	RunID string `json:"run_id"`

	// Total is the number of records produced by flattening.
	Total int `json:"total"`

	// Inserted is the number of records accepted by the sink.
	Inserted int `json:"inserted"`

	// Failed is the number of records rejected by the sink.
	Failed int `json:"failed"`

	// Failures lists the rejected records in insertion order.
	Failures []FailedRecord `json:"failures,omitempty"`
}
