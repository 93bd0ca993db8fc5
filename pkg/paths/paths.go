package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/linkkeeper/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for linkkeeper
	EnvConfigDir = "LINKKEEPER_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directory and file names. These are the values written to a
// fresh configuration file; users may change the file names there.
const (
	// ConfigDirName is the directory created under XDG_CONFIG_HOME
	ConfigDirName = "link-keeper"

	// ConfigFileName is the name of the TOML settings file
	ConfigFileName = "link-keeper.toml"

	// RawFileName is the name of the raw JSON link log
	RawFileName = "raw.json"
)

// Paths holds the resolved directories for one run
type Paths struct {
	configDir string
}

// New resolves the configuration directory from LINKKEEPER_CONFIG_DIR or
// XDG_CONFIG_HOME.
func New() (*Paths, error) {
	dir := os.Getenv(EnvConfigDir)
	if dir != "" {
		dir = expandHome(dir)
	} else {
		dir = filepath.Join(xdg.ConfigHome, ConfigDirName)
	}
	return NewWithConfigDir(dir)
}

// NewWithConfigDir uses dir as the configuration directory
func NewWithConfigDir(dir string) (*Paths, error) {
	if dir == "" {
		return nil, errors.New(errors.ErrInvalidInput, "configuration directory cannot be empty")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", dir)
	}
	return &Paths{configDir: abs}, nil
}

// ConfigDir returns the configuration directory
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// ConfigFilePath returns the default configuration file path
func (p *Paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// RawFilePath returns the default raw log path
func (p *Paths) RawFilePath() string {
	return filepath.Join(p.configDir, RawFileName)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	return expandHome(path)
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	// ~user forms are left alone
	return path
}
