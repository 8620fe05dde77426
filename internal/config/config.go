package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the application configuration, loaded once at startup.
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Backend BackendConfig `toml:"backend"`
	Window  WindowConfig  `toml:"window"`
}

// LoggingConfig controls log verbosity and output format.
type LoggingConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// BackendConfig points at the remote backend bootstrapped before the UI
// becomes interactive. With Enabled false the app starts fully offline.
type BackendConfig struct {
	Enabled          bool   `toml:"enabled"`
	ConnectionString string `toml:"connection_string"`
	Table            string `toml:"table"`
}

// WindowConfig sets the initial main window dimensions.
type WindowConfig struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
			JSON:  false,
		},
		Backend: BackendConfig{
			Enabled: false,
			Table:   "todos",
		},
		Window: WindowConfig{
			Width:  420,
			Height: 640,
		},
	}
}

// Path returns the location of the config file under the platform's user
// config directory.
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, "tasklight", "config.toml"), nil
}

// Load reads the config file, creating it with defaults on first run.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config file at an explicit path. Missing values are
// merged with defaults.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if err := cfg.SaveTo(path); err != nil {
			// A read-only config dir is not fatal; run on defaults.
			return cfg, nil
		}
		return cfg, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.fillDefaults()
	return &cfg, nil
}

// Save writes the configuration to its default location.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the configuration to an explicit path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) fillDefaults() {
	defaults := Default()

	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Backend.Table == "" {
		c.Backend.Table = defaults.Backend.Table
	}
	if c.Window.Width == 0 {
		c.Window.Width = defaults.Window.Width
	}
	if c.Window.Height == 0 {
		c.Window.Height = defaults.Window.Height
	}
}
