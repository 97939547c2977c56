// Package config loads the graphnet CLI configuration.
//
// Settings are read from a TOML file. Without an explicit path the file is
// $XDG_CONFIG_HOME/graphnet/config.toml (or ~/.config/graphnet/config.toml);
// a missing default file is not an error and yields [Default].
//
//	[log]
//	level = "info"
//	file = "/var/log/graphnet.log"
//	max_size = 10
//	max_age = 28
//
//	[cache]
//	disabled = false
//	dir = ""
//	ttl_hours = 168
//
//	[render]
//	format = "svg"
//	detailed = false
//	layout = "dot"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/graphnet/pkg/errors"
)

const appName = "graphnet"

// Config is the complete CLI configuration.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Cache  CacheConfig  `toml:"cache"`
	Render RenderConfig `toml:"render"`
}

// LogConfig controls log verbosity and an optional rotating log file.
type LogConfig struct {
	Level   string `toml:"level"`
	File    string `toml:"file"`
	MaxSize int    `toml:"max_size"` // megabytes
	MaxAge  int    `toml:"max_age"`  // days
}

// CacheConfig controls the render cache.
type CacheConfig struct {
	Disabled bool   `toml:"disabled"`
	Dir      string `toml:"dir"`
	TTLHours int    `toml:"ttl_hours"`
}

// TTL returns the entry lifetime. Zero means entries never expire.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// RenderConfig holds defaults for the render command.
type RenderConfig struct {
	Format   string `toml:"format"`
	Detailed bool   `toml:"detailed"`
	Layout   string `toml:"layout"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", MaxSize: 10, MaxAge: 28},
		Cache:  CacheConfig{TTLHours: 7 * 24},
		Render: RenderConfig{Format: "svg", Layout: "dot"},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return filepath.Join(dir, appName, "config.toml"), nil
}

// Load reads the configuration at path. An empty path selects
// [DefaultPath], which may be absent. An explicit path must exist.
// Values not present in the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.resolvePaths(filepath.Dir(path)); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// resolvePaths makes relative file settings relative to the config file.
func (c *Config) resolvePaths(base string) error {
	for _, p := range []*string{&c.Log.File, &c.Cache.Dir} {
		if *p == "" || filepath.IsAbs(*p) {
			continue
		}
		abs, err := filepath.Abs(filepath.Join(base, *p))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", *p)
		}
		*p = abs
	}
	return nil
}

// Validate checks enumerated settings and numeric ranges.
func (c Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.ErrCodeInvalidInput, "log.level %q (want debug, info, warn or error)", c.Log.Level)
	}
	if c.Log.MaxSize < 0 || c.Log.MaxAge < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "log.max_size and log.max_age must not be negative")
	}
	if c.Cache.TTLHours < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache.ttl_hours must not be negative")
	}
	switch c.Render.Format {
	case "svg", "png", "dot":
	default:
		return errors.New(errors.ErrCodeInvalidInput, "render.format %q (want svg, png or dot)", c.Render.Format)
	}
	switch c.Render.Layout {
	case "dot", "neato":
	default:
		return errors.New(errors.ErrCodeInvalidInput, "render.layout %q (want dot or neato)", c.Render.Layout)
	}
	return nil
}
