// Package app wires application dependencies for the CLI.
//
// It selects the native engine named in Config, builds the logger, the
// context manager and the primitive services, and exposes them through the
// Wire struct for commands to use.
package app
