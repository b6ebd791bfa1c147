package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/vitos/crypto_dash/internal/domain"
	"gopkg.in/yaml.v3"
)

type Config struct {
	API struct {
		BaseURL      string        `yaml:"base_url"`
		APIKey       string        `yaml:"api_key"`
		APIKeyHeader string        `yaml:"api_key_header"`
		VsCurrency   string        `yaml:"vs_currency"`
		Timeout      time.Duration `yaml:"timeout"`
	} `yaml:"api"`
	View struct {
		DefaultLimit int `yaml:"default_limit"`
	} `yaml:"view"`
	Logging struct {
		Level    string `yaml:"level"`
		Encoding string `yaml:"encoding"`
	} `yaml:"logging"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
}

// Load reads the YAML file at path, then applies environment overrides.
// A missing file is not an error; defaults and the environment still apply.
// Variables from a .env file in the working directory are loaded first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		f, err := os.Open(path)
		switch {
		case err == nil:
			defer f.Close()
			if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
				return nil, fmt.Errorf("decode %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.View.DefaultLimit < 1 || c.View.DefaultLimit > domain.MaxLimit {
		return fmt.Errorf("view.default_limit: %w: %d (must be 1..%d)", domain.ErrInvalidLimit, c.View.DefaultLimit, domain.MaxLimit)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("COIN_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("COIN_API_KEY"); v != "" {
		c.API.APIKey = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("DASHBOARD_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DASHBOARD_PORT: %w", err)
		}
		c.Server.Port = port
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "https://api.coingecko.com/api/v3"
	}
	if c.API.VsCurrency == "" {
		c.API.VsCurrency = "usd"
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = 10 * time.Second
	}
	if c.View.DefaultLimit == 0 {
		c.View.DefaultLimit = 10
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
}
