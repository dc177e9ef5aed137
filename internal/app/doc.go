// Package app wires an application instance together: it owns the logger,
// validates the configuration, loads the job through a config.Loader,
// registers the cost-model modules, resolves the job into queries, and runs
// the estimation, rendering the winning configuration to the output writer.
//
// Startup failures (unloadable job, unknown model types, broken chains) are
// configuration parity errors and panic during construction; the CLI
// boundary recovers them into a clean exit.
package app
