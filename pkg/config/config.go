package config

import (
	"strings"

	"github.com/arthur-debert/unbrew/pkg/errors"
)

// Config is the typed view of all settings.
type Config struct {
	Brew   Brew   `koanf:"brew"`
	Log    Log    `koanf:"log"`
	Output Output `koanf:"output"`
}

// Brew configures how the brew executable is invoked.
type Brew struct {
	// Command is the executable name or path.
	Command string `koanf:"command"`
	// Env is added to the environment of every invocation.
	Env map[string]string `koanf:"env"`
}

// Log configures logging destinations.
type Log struct {
	File string `koanf:"file"`
}

// Output configures how progress is rendered.
type Output struct {
	Format string `koanf:"format"`
}

// Load layers every source and decodes the result.
func Load(opts Options) (*Config, error) {
	k, err := NewKoanf(opts)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode config")
	}

	// Environment variable names are case sensitive, but keys coming from
	// UNBREW_* variables arrive lower-cased.
	normalized := make(map[string]string, len(cfg.Brew.Env))
	for key, value := range cfg.Brew.Env {
		normalized[strings.ToUpper(key)] = value
	}
	cfg.Brew.Env = normalized

	if strings.TrimSpace(cfg.Brew.Command) == "" {
		return nil, errors.New(errors.ErrConfigParse, "brew.command must not be empty")
	}

	return &cfg, nil
}
