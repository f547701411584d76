// Package value provides the closed set of JSON-compatible values that flow
// through the seeder: null, boolean, number, string, ordered array and
// ordered object.
//
// A [Value] is produced by the JSON and YAML decoders ([ParseJSON],
// [FromYAML]) and consumed by the merger and the flattener. [Encode] renders
// a value into the canonical string stored in the configs table and [Decode]
// reverses it, so that Decode(Encode(v)) is always deeply equal to v.
//
// Objects remember the order in which keys were first inserted; the order is
// kept through merging, flattening and encoding.
package value
