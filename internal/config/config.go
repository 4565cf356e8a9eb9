package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAPIURL  = "http://localhost:8080"
	defaultTimeout = 10 * time.Second
)

type Config struct {
	APIURL      string
	Timeout     time.Duration
	StoragePath string
}

// Load reads configuration from the environment, after loading an optional
// .env file from the working directory.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		APIURL:  defaultAPIURL,
		Timeout: defaultTimeout,
	}

	if v := os.Getenv("STOREFRONT_API_URL"); v != "" {
		cfg.APIURL = v
	}

	if v := os.Getenv("STOREFRONT_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("STOREFRONT_TIMEOUT[%s] is not a duration: %w", v, err)
		}
		cfg.Timeout = timeout
	}

	if v := os.Getenv("STOREFRONT_STORAGE_PATH"); v != "" {
		cfg.StoragePath = v
		return cfg, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("os.UserHomeDir: %w", err)
	}
	cfg.StoragePath = filepath.Join(home, ".storefront", "storage.json")

	return cfg, nil
}
