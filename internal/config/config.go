package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied when no config file exists yet.
const (
	DefaultLocale = "en"
	DefaultTheme  = "system"
)

// Config holds the persisted client preferences.
type Config struct {
	// Locale is the active localization catalog, e.g. "en" or "pt-BR".
	Locale string `json:"locale"`
	// Theme is the render mode: "system", "light" or "dark".
	Theme string `json:"theme"`
	// RuntimeDir is where the embedding webview drops its marker files.
	RuntimeDir string `json:"runtime_dir,omitempty"`
	// DataDir holds the chat-history database and locale catalogs.
	DataDir string `json:"data_dir,omitempty"`

	path string
}

// Load reads the config file, creating it with defaults when missing.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config file at an explicit path, creating it with
// defaults when missing. Preference updates are last-write-wins.
func LoadFrom(path string) (*Config, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := defaultConfig(path)
		if err := cfg.Save(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.path = path
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes the config back to its file.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(c.path, data, 0644)
}

// Home returns the directory the config file lives in.
func (c *Config) Home() string {
	return filepath.Dir(c.path)
}

// ChatDBPath returns the path of the chat-history database.
func (c *Config) ChatDBPath() string {
	return filepath.Join(c.dataDir(), "chat.db")
}

// LocaleDir returns the directory holding localization catalogs.
func (c *Config) LocaleDir() string {
	return filepath.Join(c.dataDir(), "locales")
}

// SessionPath returns the path of the cached credential session.
func (c *Config) SessionPath() string {
	return filepath.Join(c.Home(), "session.json")
}

func (c *Config) dataDir() string {
	if c.DataDir != "" {
		return c.DataDir
	}
	return filepath.Join(c.Home(), "data")
}

func (c *Config) applyDefaults() {
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
}

func defaultConfig(path string) *Config {
	return &Config{
		Locale: DefaultLocale,
		Theme:  DefaultTheme,
		path:   path,
	}
}

// configPath resolves the config file location. MEDISCAN_HOME overrides the
// user home directory.
func configPath() (string, error) {
	if home := os.Getenv("MEDISCAN_HOME"); home != "" {
		return filepath.Join(home, "config.json"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".mediscan", "config.json"), nil
}
