// Package filesystem provides the FS abstraction linkkeeper reads and
// writes its files through.
//
// NewOS is used at runtime; NewAferoFS wraps any afero filesystem and is
// what tests use with an in-memory afero.MemMapFs. WriteFileAtomic
// replaces a file through a temporary sibling and a rename so a crash
// mid-write never leaves a truncated file behind.
package filesystem
