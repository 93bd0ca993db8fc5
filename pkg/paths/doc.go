// Package paths resolves where linkkeeper keeps its files.
// It follows the XDG Base Directory specification and lets
// LINKKEEPER_CONFIG_DIR override the configuration directory.
package paths
