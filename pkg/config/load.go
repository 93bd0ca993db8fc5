package config

import (
	"bytes"
	stderrors "errors"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/linkkeeper/pkg/errors"
	"github.com/arthur-debert/linkkeeper/pkg/filesystem"
	"github.com/arthur-debert/linkkeeper/pkg/logging"
	"github.com/arthur-debert/linkkeeper/pkg/paths"
)

// EnvPrefix prefixes environment variables overriding settings,
// e.g. LINKKEEPER_RAW_FILE_NAME
const EnvPrefix = "LINKKEEPER_"

// BackendsKey is the table holding backend configurations
const BackendsKey = "backends"

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Config is a loaded configuration file
type Config struct {
	Settings Settings

	path     string
	backends map[string]map[string]interface{}
}

// Load reads the configuration file for p, creating the config
// directory and an empty file on first run.
func Load(fsys filesystem.FS, p *paths.Paths) (*Config, error) {
	logger := logging.GetLogger("config")
	path := p.ConfigFilePath()

	if err := fsys.MkdirAll(p.ConfigDir(), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create configuration directory %s", p.ConfigDir())
	}

	created, err := filesystem.EnsureFile(fsys, path)
	if err != nil {
		return nil, err
	}
	if created {
		logger.Info().Str("path", path).Msg("Created configuration file")
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read configuration file %s", path)
	}

	cfg, err := Parse(data, p)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Strs("backends", cfg.BackendNames()).
		Msg("Loaded configuration")
	return cfg, nil
}

// Parse decodes a configuration document layered over the defaults for p
// and the environment. The result saves to p's config file.
func Parse(data []byte, p *paths.Paths) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(DefaultSettings(p).toMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default settings")
	}

	if len(bytes.TrimSpace(data)) > 0 {
		if err := k.Load(&rawBytesProvider{bytes: data}, toml.Parser()); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse configuration file")
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var settings Settings
	if err := k.UnmarshalWithConf("", &settings, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode settings")
	}
	settings.ConfigPath = paths.ExpandHome(settings.ConfigPath)

	if err := settings.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "invalid settings")
	}

	backends := make(map[string]map[string]interface{})
	for _, name := range k.MapKeys(BackendsKey) {
		backends[name] = k.Cut(BackendsKey + "." + name).Raw()
	}

	return &Config{
		Settings: settings,
		path:     p.ConfigFilePath(),
		backends: backends,
	}, nil
}

// envKey maps LINKKEEPER_RAW_FILE_NAME to raw_file_name. Variables that do
// not name a setting, or are empty, are skipped.
func envKey(key, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if !settingKeys[name] {
		return "", nil
	}
	return name, value
}

// Path returns the file the configuration is read from and saved to
func (c *Config) Path() string {
	return c.path
}

// BackendNames returns the configured backend tables in sorted order
func (c *Config) BackendNames() []string {
	names := make([]string, 0, len(c.backends))
	for name := range c.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Backend returns the raw table for a backend
func (c *Config) Backend(name string) (map[string]interface{}, bool) {
	table, ok := c.backends[name]
	return table, ok
}
