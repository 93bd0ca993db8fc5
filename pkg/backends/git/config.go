package git

import (
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-viper/mapstructure/v2"

	"github.com/arthur-debert/linkkeeper/pkg/errors"
	"github.com/arthur-debert/linkkeeper/pkg/paths"
)

// DefaultFileName is the Markdown index written when none is configured
const DefaultFileName = "README.md"

// Config is the [backends.git] table
type Config struct {
	// RepositoryPath is the working tree the index lives in
	RepositoryPath string `toml:"repository_path" json:"repository_path" yaml:"repository_path"`

	// FileName is the Markdown index, relative to RepositoryPath
	FileName string `toml:"file_name" json:"file_name" yaml:"file_name"`

	// PushOnAdd pushes the current branch to every remote after each commit
	PushOnAdd bool `toml:"push_on_add" json:"push_on_add" yaml:"push_on_add"`
}

// Validate checks the configuration can address a file inside the repository
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.RepositoryPath, validation.Required),
		validation.Field(&c.FileName, validation.Required, validation.By(insideRepository)),
	)
}

func insideRepository(value interface{}) error {
	name, _ := value.(string)
	if filepath.Clean(name) == paths.RawFileName {
		return validation.NewError("validation_not_raw_log", "must not be the raw log file")
	}
	if filepath.IsAbs(name) {
		return validation.NewError("validation_relative_path", "must be relative to the repository")
	}
	clean := filepath.Clean(name)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return validation.NewError("validation_inside_repository", "must not leave the repository")
	}
	return nil
}

// DecodeConfig builds a Config from a raw configuration table
func DecodeConfig(raw map[string]interface{}) (Config, error) {
	cfg := Config{FileName: DefaultFileName}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "toml",
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return cfg, errors.Wrap(err, errors.ErrInternal, "failed to create decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return cfg, errors.Wrap(err, errors.ErrConfigParse, "failed to decode git backend configuration")
	}
	return cfg, nil
}
