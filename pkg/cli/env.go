package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v9"
)

// DefaultProgramName is shown in usage text when not launched by a host CLI.
const DefaultProgramName = "siteshield"

// LogFileName is the log file created under the cache directory.
const LogFileName = "siteshield.log"

// Environment holds the variables set by a host CLI launcher.
type Environment struct {
	// Command is the name the host CLI was invoked with.
	Command string `env:"AKAMAI_CLI_COMMAND"`
	// CacheDir is where the host CLI keeps per-package state.
	CacheDir string `env:"AKAMAI_CLI_CACHE_DIR"`
}

// LoadEnvironment reads the launcher variables.
func LoadEnvironment() (*Environment, error) {
	e := &Environment{}
	if err := env.Parse(e); err != nil {
		return nil, fmt.Errorf("cli: reading environment: %w", err)
	}
	return e, nil
}

// CommandName is the single-word name of the root command.
func (e *Environment) CommandName() string {
	if cmd := strings.TrimSpace(e.Command); cmd != "" {
		return cmd
	}
	return DefaultProgramName
}

// ProgramName returns the name to show in usage and help text. Under a
// host launcher it includes the launcher, e.g. "akamai site-shield".
func (e *Environment) ProgramName() string {
	if cmd := strings.TrimSpace(e.Command); cmd != "" {
		return "akamai " + cmd
	}
	return DefaultProgramName
}

// LogFile picks the log file path: explicit, then config, then the
// launcher's cache directory, then the user cache directory. Empty means
// no cache directory could be found and no file sink is used.
func (e *Environment) LogFile(explicit string, cfg *Config) string {
	if explicit != "" {
		return explicit
	}
	if cfg != nil && cfg.LogFile != "" {
		return cfg.LogFile
	}
	if e.CacheDir != "" {
		return filepath.Join(e.CacheDir, LogFileName)
	}
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, DefaultProgramName, LogFileName)
	}
	return ""
}
