// Package registry provides a generic, type-safe name registry and the
// global registry of backend factories. Backend packages register
// themselves from init(), so the binary only needs a blank import to make
// a backend available to `backend add` and to configuration loading.
package registry
