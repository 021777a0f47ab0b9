// Package commands implements CLI command handlers for geoset.
//
// Each command implements the Runner interface and delegates the work
// to the corresponding internal package:
//   - build: run the full list pipeline and emit artifacts
//   - download: fetch remote url sources into the downloads cache
//   - check: verify configuration and inputs, optionally audit dead domains
//   - serve: run the HTTP API server
//
// All commands follow a consistent pattern:
//   - Init(): parse arguments and load + validate configuration
//   - Run(): execute the command
//   - Name(): return the command name for dispatch
package commands
