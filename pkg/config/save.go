package config

import (
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/linkkeeper/pkg/errors"
	"github.com/arthur-debert/linkkeeper/pkg/filesystem"
	"github.com/arthur-debert/linkkeeper/pkg/logging"
	"github.com/arthur-debert/linkkeeper/pkg/types"
)

// document is the on-disk layout of the configuration file
type document struct {
	ConfigPath     string                 `toml:"config_path"`
	ConfigFileName string                 `toml:"config_file_name"`
	RawFileName    string                 `toml:"raw_file_name"`
	Backends       map[string]interface{} `toml:"backends,omitempty"`
}

// Encode renders settings and the configuration of every backend as a
// complete TOML document.
func Encode(settings Settings, backends []types.Backend) ([]byte, error) {
	doc := document{
		ConfigPath:     settings.ConfigPath,
		ConfigFileName: settings.ConfigFileName,
		RawFileName:    settings.RawFileName,
	}
	if len(backends) > 0 {
		doc.Backends = make(map[string]interface{}, len(backends))
		for _, backend := range backends {
			doc.Backends[backend.Name()] = backend.Config()
		}
	}

	data, err := gotoml.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigWrite, "failed to encode configuration")
	}
	return data, nil
}

// Save replaces the configuration file with the current settings and
// backends. Tables for backends not passed are dropped.
func (c *Config) Save(fsys filesystem.FS, backends []types.Backend) error {
	data, err := Encode(c.Settings, backends)
	if err != nil {
		return err
	}

	if err := filesystem.WriteFileAtomic(fsys, c.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write configuration file %s", c.path)
	}

	var written struct {
		Backends map[string]map[string]interface{} `toml:"backends"`
	}
	if err := gotoml.Unmarshal(data, &written); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "failed to read back configuration")
	}
	c.backends = written.Backends
	if c.backends == nil {
		c.backends = make(map[string]map[string]interface{})
	}

	logger := logging.GetLogger("config")
	logger.Info().
		Str("path", c.path).
		Strs("backends", c.BackendNames()).
		Msg("Saved configuration")
	return nil
}
