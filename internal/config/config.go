package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the engine configuration, loaded from a YAML file.
type Config struct {
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	Remote struct {
		Enabled        bool   `yaml:"enabled"`
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"remote"`

	Player struct {
		ID       string `yaml:"id"`
		Username string `yaml:"username"`
	} `yaml:"player"`

	Log struct {
		Level string `yaml:"level"`
		Path  string `yaml:"path"`
	} `yaml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Database.Path = filepath.Join(dataDir(), "pixelpages.db")
	cfg.Remote.TimeoutSeconds = 5
	cfg.Player.Username = "player"
	cfg.Log.Level = "info"
	return cfg
}

// Load reads the config file at path, filling unset fields with
// defaults. A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = Default().Database.Path
	}
	if cfg.Remote.TimeoutSeconds <= 0 {
		cfg.Remote.TimeoutSeconds = Default().Remote.TimeoutSeconds
	}
	if cfg.Player.Username == "" {
		cfg.Player.Username = Default().Player.Username
	}

	return cfg, nil
}

// RemoteTimeout returns the remote call timeout as a duration.
func (c *Config) RemoteTimeout() time.Duration {
	return time.Duration(c.Remote.TimeoutSeconds) * time.Second
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".pixelpages")
}
