/*
Package log provides structured logging for HALO using zerolog.

One global logger is initialized at process start and shared by every
component; child loggers attach stable context fields so a single grep over
the manager's output follows one host or one resource through a failover.

# Usage

Initialize once in main:

	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
	})

Console output (the default, human-readable) is for interactive runs;
JSONOutput is for collection. Output defaults to stderr so command output
on stdout stays parseable.

Component loggers:

	engineLog := log.WithComponent("engine")
	engineLog.Info().Str("resource_id", "ost0").Msg("resource status changed")

	hostLog := log.WithHost("mds00")
	hostLog.Warn().Msg("fence off attempt failed")

Simple helpers cover the common cases:

	log.Info("manager running")
	log.Errorf("could not load config", err)
	log.Fatal("cannot continue") // exits the process

# Conventions

Components log under fixed names (engine, host, fence, ocf, agent, api,
manager) and identify their subjects with host_id / resource_id fields
rather than formatted messages, so transitions stay machine-queryable. The
state transitions themselves also flow through pkg/events; log lines are
for humans, events are for ordering guarantees.
*/
package log
