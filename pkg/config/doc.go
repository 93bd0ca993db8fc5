// Package config loads and writes the linkkeeper configuration file.
//
// The file is TOML. Top-level keys hold Settings; each activated backend
// keeps its own table under [backends.<name>]. Loading layers defaults,
// the file and LINKKEEPER_ environment variables with koanf. Saving
// regenerates the whole document and replaces the file atomically.
package config
