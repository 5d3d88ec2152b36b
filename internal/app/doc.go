// Package app wires application dependencies for the CLI.
//
// It loads Config from defaults, an optional TOML file and KMACRYPT_*
// environment variables, configures logging, and builds the file store and
// high-level services, exposing them via the Wire struct for commands to use.
package app
