// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// seeder binary.
//
// All Msg* constants are human-readable message strings written into log
// entries to describe the outcome of a startup step or a seeding run.
// Keeping them in one place ensures consistent wording in operator logs.
package app

const (
	// MsgErrorGettingConfigs is logged when the runtime configuration cannot
	// be loaded or fails validation.
	MsgErrorGettingConfigs = "error getting configs"

	// MsgReceivedConfigs is logged once the runtime configuration is ready.
	MsgReceivedConfigs = "received configs"

	// MsgErrorCreatingStorages is logged when the database cannot be reached
	// or migrated.
	MsgErrorCreatingStorages = "error creating storages"

	// MsgErrorCreatingServices is logged when the seed service cannot be
	// assembled from the configuration.
	MsgErrorCreatingServices = "error creating services"

	// MsgSeedingAborted is logged when a run stops before inserting anything,
	// for example because the settings directory is ambiguous.
	MsgSeedingAborted = "seeding aborted"

	// MsgSeedingFinished is logged after every record was offered to the sink.
	MsgSeedingFinished = "seeding finished"

	// MsgSeedingFinishedWithFailures is logged after a run in which the sink
	// rejected at least one record.
	MsgSeedingFinishedWithFailures = "seeding finished with failures"
)
