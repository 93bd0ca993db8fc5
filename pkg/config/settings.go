package config

import (
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/arthur-debert/linkkeeper/pkg/paths"
)

// Settings are the top-level configuration values
type Settings struct {
	// ConfigPath is the directory holding the config file and raw log
	ConfigPath string `koanf:"config_path" toml:"config_path" json:"config_path" yaml:"config_path"`

	ConfigFileName string `koanf:"config_file_name" toml:"config_file_name" json:"config_file_name" yaml:"config_file_name"`

	// RawFileName names the raw JSON log, both in ConfigPath and inside
	// backends that keep their own copy
	RawFileName string `koanf:"raw_file_name" toml:"raw_file_name" json:"raw_file_name" yaml:"raw_file_name"`
}

// settingKeys are the keys environment variables may override
var settingKeys = map[string]bool{
	"config_path":      true,
	"config_file_name": true,
	"raw_file_name":    true,
}

// DefaultSettings returns the settings written to a fresh config file
func DefaultSettings(p *paths.Paths) Settings {
	return Settings{
		ConfigPath:     p.ConfigDir(),
		ConfigFileName: paths.ConfigFileName,
		RawFileName:    paths.RawFileName,
	}
}

// Validate checks every setting is present and file names are bare names
func (s Settings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ConfigPath, validation.Required),
		validation.Field(&s.ConfigFileName, validation.Required, validation.By(bareFileName)),
		validation.Field(&s.RawFileName, validation.Required, validation.By(bareFileName)),
	)
}

func bareFileName(value interface{}) error {
	name, _ := value.(string)
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return validation.NewError("validation_file_name", "must be a file name without directories")
	}
	return nil
}

// RawFilePath returns the location of the raw JSON log
func (s Settings) RawFilePath() string {
	return filepath.Join(s.ConfigPath, s.RawFileName)
}

func (s Settings) toMap() map[string]interface{} {
	return map[string]interface{}{
		"config_path":      s.ConfigPath,
		"config_file_name": s.ConfigFileName,
		"raw_file_name":    s.RawFileName,
	}
}
