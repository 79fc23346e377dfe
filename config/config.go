package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the fxwatch configuration.
type Config struct {
	Account AccountConfig `json:"account" yaml:"account"`
	OANDA   OANDAConfig   `json:"oanda" yaml:"oanda"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// AccountConfig names the account to inspect.
type AccountConfig struct {
	ID string `json:"id" yaml:"id"`
}

// OANDAConfig selects the API environment. The token normally comes from
// the OANDA_TOKEN environment variable; a token in the file is tolerated
// but the environment wins.
type OANDAConfig struct {
	Env   string `json:"env" yaml:"env"`
	Token string `json:"token,omitempty" yaml:"token,omitempty"`
}

// JournalConfig enables snapshot journaling when DBPath is set.
type JournalConfig struct {
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

type LogConfig struct {
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile writes the configuration (YAML or JSON by extension). The
// token is never written.
func (c *Config) SaveToFile(path string) error {
	clean := *c
	clean.OANDA.Token = ""

	var (
		data []byte
		err  error
	)
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(&clean)
	} else {
		data, err = json.MarshalIndent(&clean, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.OANDA.Env)) {
	case "practice", "demo", "live":
	case "":
		return fmt.Errorf("oanda.env is required (practice|live)")
	default:
		return fmt.Errorf("unknown oanda.env: %s", c.OANDA.Env)
	}
	if c.Log.Level != "" {
		if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}
	return nil
}

// ApplyEnv overlays environment variables onto the configuration. The
// environment wins over file values.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv("OANDA_TOKEN")); v != "" {
		c.OANDA.Token = v
	}
	if v := strings.TrimSpace(os.Getenv("OANDA_ACCOUNT_ID")); v != "" {
		c.Account.ID = v
	}
	if v := strings.TrimSpace(os.Getenv("OANDA_ENV")); v != "" {
		c.OANDA.Env = v
	}
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		OANDA: OANDAConfig{
			Env: "practice",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
