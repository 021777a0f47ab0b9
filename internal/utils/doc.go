// Package utils provides general-purpose utility functions for geoset.
//
// This package contains small helpers used across the application:
// path resolution relative to the config file, safe file closing, and
// directory creation for artifact output trees.
package utils
