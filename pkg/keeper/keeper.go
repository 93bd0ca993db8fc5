// Package keeper coordinates storing links across the activated backends.
//
// A Keeper owns the loaded configuration, the raw link log under the
// config directory, and the ordered list of activated backends. Adding a
// link fans out to every backend and records the link in the raw log even
// when some backends fail.
package keeper

import (
	"context"

	"github.com/arthur-debert/linkkeeper/pkg/config"
	"github.com/arthur-debert/linkkeeper/pkg/errors"
	"github.com/arthur-debert/linkkeeper/pkg/filesystem"
	"github.com/arthur-debert/linkkeeper/pkg/logging"
	"github.com/arthur-debert/linkkeeper/pkg/paths"
	"github.com/arthur-debert/linkkeeper/pkg/rawlog"
	"github.com/arthur-debert/linkkeeper/pkg/registry"
	"github.com/arthur-debert/linkkeeper/pkg/types"
)

// Keeper stores links in the activated backends
type Keeper struct {
	fs       filesystem.FS
	config   *config.Config
	rawLog   *rawlog.Log
	backends []types.Backend
	registry registry.Registry[registry.BackendDescriptor]
}

// Option configures a Keeper
type Option func(*Keeper)

// WithRegistry sets the backend registry used to rebuild backends from
// the configuration file and to list the backends that can be added
func WithRegistry(reg registry.Registry[registry.BackendDescriptor]) Option {
	return func(k *Keeper) {
		k.registry = reg
	}
}

// New creates a Keeper over an already loaded configuration
func New(fsys filesystem.FS, cfg *config.Config, backends []types.Backend, opts ...Option) *Keeper {
	k := &Keeper{
		fs:       fsys,
		config:   cfg,
		rawLog:   rawlog.New(fsys, cfg.Settings.RawFilePath()),
		backends: append([]types.Backend(nil), backends...),
		registry: registry.Backends(),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Open loads the configuration for p, creating it on first run, and
// rebuilds every backend it lists.
func Open(fsys filesystem.FS, p *paths.Paths, opts ...Option) (*Keeper, error) {
	logger := logging.GetLogger("keeper")

	cfg, err := config.Load(fsys, p)
	if err != nil {
		return nil, err
	}

	k := New(fsys, cfg, nil, opts...)
	for _, name := range cfg.BackendNames() {
		table, _ := cfg.Backend(name)
		backend, err := registry.NewBackend(k.registry, name, table)
		if err != nil {
			return nil, errors.Wrapf(err, errors.GetErrorCode(err), "failed to restore backend %q from %s", name, cfg.Path()).
				WithDetail("backend", name)
		}
		k.backends = append(k.backends, backend)
	}

	logger.Debug().
		Int("backends", len(k.backends)).
		Str("config", cfg.Path()).
		Msg("Keeper opened")
	return k, nil
}

// Settings returns the loaded settings
func (k *Keeper) Settings() config.Settings {
	return k.config.Settings
}

// ConfigPath returns the configuration file location
func (k *Keeper) ConfigPath() string {
	return k.config.Path()
}

// ActivatedBackends returns the activated backends in activation order
func (k *Keeper) ActivatedBackends() []types.Backend {
	return append([]types.Backend(nil), k.backends...)
}

// IsActivated reports whether a backend with the given type name is active
func (k *Keeper) IsActivated(name string) bool {
	for _, b := range k.backends {
		if b.Name() == name {
			return true
		}
	}
	return false
}

// AvailableBackends lists the registered backend types not yet activated
func (k *Keeper) AvailableBackends() []registry.BackendDescriptor {
	var out []registry.BackendDescriptor
	for _, name := range k.registry.List() {
		if k.IsActivated(name) {
			continue
		}
		desc, err := k.registry.Get(name)
		if err != nil {
			continue
		}
		out = append(out, desc)
	}
	return out
}

// AddBackend activates b: it runs the backend's initializer, then
// rewrites the configuration file with b's table included.
func (k *Keeper) AddBackend(ctx context.Context, b types.Backend) error {
	logger := logging.GetLogger("keeper")

	if k.IsActivated(b.Name()) {
		return errors.Newf(errors.ErrAlreadyExists, "backend %q is already activated", b.Name()).
			WithDetail("backend", b.Name())
	}

	if err := b.Add(ctx); err != nil {
		return err
	}

	k.backends = append(k.backends, b)
	if err := k.config.Save(k.fs, k.backends); err != nil {
		k.backends = k.backends[:len(k.backends)-1]
		return err
	}

	logger.Info().Str("backend", b.Name()).Msg("Backend activated")
	return nil
}

// LinkAlreadyExists reports whether url occurs in the raw log. The test
// is a substring match over the whole file.
func (k *Keeper) LinkAlreadyExists(url string) (bool, error) {
	return k.rawLog.Contains(url)
}

// Links returns every link in the raw log in insertion order
func (k *Keeper) Links() ([]types.Link, error) {
	return k.rawLog.Load()
}
