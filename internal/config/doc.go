// Package config loads wgraph runtime settings through viper: built-in
// defaults, then a .wgraph.yaml/.wgraph.toml file, then WGRAPH_* environment
// variables, then bound command-line flags.
package config
