// Package loader reads the two configuration trees a seeding run merges: the
// bundled defaults ([DefaultsLoader]) and the optional operator override
// ([SettingsLoader]).
//
// The settings directory may hold at most one file whose name contains
// "settings". Its extension selects the decoder: .json, .yaml or .yml.
// Both trees must map every category to an object of keys.
package loader
