// Package github is a placeholder GitHub backend. It accepts links and
// logs them but does not contact GitHub.
package github

import (
	"context"

	"github.com/go-viper/mapstructure/v2"

	"github.com/arthur-debert/linkkeeper/pkg/errors"
	"github.com/arthur-debert/linkkeeper/pkg/logging"
	"github.com/arthur-debert/linkkeeper/pkg/registry"
	"github.com/arthur-debert/linkkeeper/pkg/secrets"
	"github.com/arthur-debert/linkkeeper/pkg/types"
)

const (
	// Name keys the backend in the configuration file
	Name = "github"

	// DisplayName is shown in the backend menu
	DisplayName = "Github"
)

func init() {
	registry.MustRegisterBackend(registry.BackendDescriptor{
		Name:        Name,
		DisplayName: DisplayName,
		Factory: func(raw map[string]interface{}) (types.Backend, error) {
			var cfg Config
			if err := mapstructure.Decode(raw, &cfg); err != nil {
				return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode github backend configuration")
			}
			return New(cfg), nil
		},
	})
}

// Config is the [backends.github] table
type Config struct {
	AccessToken types.AccessToken `toml:"access_token" mapstructure:"access_token" json:"access_token" yaml:"access_token"`
}

// Backend is the GitHub stub
type Backend struct {
	config Config
}

// New creates a GitHub backend
func New(cfg Config) *Backend {
	return &Backend{config: cfg}
}

func (b *Backend) Name() string {
	return Name
}

func (b *Backend) Config() interface{} {
	return b.config
}

func (b *Backend) Add(ctx context.Context) error {
	return nil
}

// AddLink logs link and succeeds
func (b *Backend) AddLink(ctx context.Context, link types.Link, opts types.LinkOptions) error {
	logger := logging.GetLogger("backends.github")
	logger.Info().
		Str("url", link.URL).
		Str("category", link.Category).
		Str("access_token", secrets.Mask(string(b.config.AccessToken))).
		Msg("Recorded link")
	return nil
}

func (b *Backend) SignIn(token types.AccessToken) error {
	logger := logging.GetLogger("backends.github")
	logger.Debug().
		Str("access_token", secrets.Mask(string(token))).
		Msg("Sign in")
	return nil
}

func (b *Backend) SignOut(types.AccessToken) error {
	return nil
}
