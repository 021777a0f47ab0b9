// Package config handles configuration file parsing and validation for geoset.
//
// This package reads TOML configuration files and provides strongly-typed
// structures for accessing configuration data.
//
// # Configuration Structure
//
// The configuration file defines:
//   - General settings (community data directory, output directory, workers)
//   - Named rule lists with their sources (community data files, local files,
//     URLs, or inline entries) and per-list attribute exclusions
//   - Optional compile, publish, server and check sections
//
// # Example Usage
//
// Loading and validating a configuration file:
//
//	cfg, err := config.LoadConfig("/etc/geoset.conf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatal(err)
//	}
//
// Accessing configuration:
//
//	for _, list := range cfg.Lists {
//	    fmt.Printf("List: %s, sources: %d\n", list.Name, len(list.Sources))
//	}
//
// Validation collects every problem in one pass and reports them together
// with dot-notation field paths.
package config
