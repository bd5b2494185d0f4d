// Package cli provides CLI-specific logic including configuration loading.
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// defaultConfigFiles are tried in order when no --config is given.
var defaultConfigFiles = []string{".siteshield.yml", ".siteshield.yaml", ".siteshield.toml"}

// Config holds per-user defaults for the common flags. Flags given on the
// command line always win.
type Config struct {
	Edgerc     string `yaml:"edgerc" toml:"edgerc"`
	Section    string `yaml:"section" toml:"section"`
	AccountKey string `yaml:"account_key" toml:"account_key"`
	Format     string `yaml:"format" toml:"format" validate:"omitempty,oneof=table json yaml markdown"`
	LogFile    string `yaml:"log_file" toml:"log_file"`
}

var validate = validator.New()

// LoadConfig reads and parses a configuration file.
// If path is empty, the default file names are tried in the current
// directory and an empty Config is returned when none exists.
// If an explicitly specified config file is not found, an error is returned.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		for _, name := range defaultConfigFiles {
			cfg, err := loadFile(name)
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return cfg, err
		}
		return &Config{}, nil
	}
	return loadFile(path)
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cli: reading config %s: %w", path, err)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(cfg)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("cli: parsing config %s: %w", path, err)
	}

	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("cli: invalid config %s: %w", path, err)
	}
	return cfg, nil
}
