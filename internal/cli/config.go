package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/evcraddock/portfolio/internal/lang"
)

// CLIConfig holds CLI configuration persisted to disk.
type CLIConfig struct {
	ServerURL string   `yaml:"server_url,omitempty"`
	Languages []string `yaml:"languages,omitempty"`
	Reports   string   `yaml:"reports,omitempty"`
}

// defaultLanguages are offered by the language selectors when nothing is configured.
var defaultLanguages = []string{"en", "es", "fr", "zh"}

// configPath returns the path to the CLI config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "portfolio", "config.yaml"), nil
}

// loadConfig reads the CLI config from disk.
// Returns a zero-value config if the file doesn't exist.
func loadConfig() (CLIConfig, error) {
	path, err := configPath()
	if err != nil {
		return CLIConfig{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return CLIConfig{}, nil
	}
	if err != nil {
		return CLIConfig{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg CLIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// saveConfig writes the CLI config to disk.
func saveConfig(cfg CLIConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// getServerURL returns the server URL from env var, config, or default.
func getServerURL() string {
	if v := os.Getenv("PORTFOLIO_SERVER_URL"); v != "" {
		return v
	}
	cfg, err := loadConfig()
	if err == nil && cfg.ServerURL != "" {
		return cfg.ServerURL
	}
	return "http://localhost:8080"
}

// getLanguages returns the canonical language choices from env var,
// config, or the defaults.
func getLanguages() ([]string, error) {
	if v := os.Getenv("PORTFOLIO_LANGUAGES"); v != "" {
		return lang.ParseList(v)
	}
	cfg, err := loadConfig()
	if err == nil && len(cfg.Languages) > 0 {
		return lang.ParseList(strings.Join(cfg.Languages, ","))
	}
	return defaultLanguages, nil
}

// getReportsPath returns the heatmap CSV path from env var or config.
func getReportsPath() string {
	if v := os.Getenv("PORTFOLIO_REPORTS"); v != "" {
		return v
	}
	cfg, err := loadConfig()
	if err == nil {
		return cfg.Reports
	}
	return ""
}

// isDevMode reports whether PORTFOLIO_DEV_MODE is enabled.
func isDevMode() bool {
	return os.Getenv("PORTFOLIO_DEV_MODE") == "true"
}
