package types

import "context"

// AccessToken is a credential handed to a backend at sign in
type AccessToken string

// LinkOptions carries settings a backend needs while storing a link
// but that it does not own itself.
type LinkOptions struct {
	// RawFileName is the name of the raw JSON log written next to the
	// backend's own files.
	RawFileName string
}

// Backend is a pluggable storage target for links.
type Backend interface {
	// Name returns the backend type name. It keys the backend's table in
	// the configuration file and must be unique among activated backends.
	Name() string

	// Add runs one-time initialization when the backend is activated.
	Add(ctx context.Context) error

	// AddLink stores a link.
	AddLink(ctx context.Context, link Link, opts LinkOptions) error

	SignIn(token AccessToken) error
	SignOut(token AccessToken) error

	// Config returns the value serialized under [backends.<name>].
	Config() interface{}
}
