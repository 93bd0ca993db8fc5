package registry

import (
	"github.com/arthur-debert/linkkeeper/pkg/errors"
	"github.com/arthur-debert/linkkeeper/pkg/types"
)

// BackendFactory builds a backend from its decoded [backends.<name>] table
type BackendFactory func(raw map[string]interface{}) (types.Backend, error)

// BackendDescriptor describes a backend type that can be activated
type BackendDescriptor struct {
	// Name is the type name used as the configuration table key
	Name string

	// DisplayName is shown in the interactive backend menu
	DisplayName string

	Factory BackendFactory
}

var backends = New[BackendDescriptor]()

// Backends returns the global backend registry
func Backends() Registry[BackendDescriptor] {
	return backends
}

// RegisterBackend adds a backend type to the global registry
func RegisterBackend(desc BackendDescriptor) error {
	if desc.Factory == nil {
		return errors.Newf(errors.ErrInvalidInput, "backend %q has no factory", desc.Name)
	}
	return backends.Register(desc.Name, desc)
}

// MustRegisterBackend is RegisterBackend for package init functions.
// It panics when the backend cannot be registered.
func MustRegisterBackend(desc BackendDescriptor) {
	if err := RegisterBackend(desc); err != nil {
		panic(err)
	}
}

// NewBackend builds a backend of the named type from its raw config table
func NewBackend(reg Registry[BackendDescriptor], name string, raw map[string]interface{}) (types.Backend, error) {
	desc, err := reg.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrBackendUnknown, "unknown backend %q", name)
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}
	backend, err := desc.Factory(raw)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "invalid configuration for backend %q", name)
	}
	return backend, nil
}
