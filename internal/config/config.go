package config

import (
	"fmt"
	"os"
	"strings"

	"dario.cat/mergo"
	"github.com/joho/godotenv"

	"mini-ledger/internal/domain"
	applog "mini-ledger/internal/log"
)

const (
	EnvDataFile = "LEDGER_DATA_FILE"
	EnvLogLevel = "LEDGER_LOG_LEVEL"
)

type Config struct {
	// Record file holding the ledger.
	DataFile string

	// debug, info, warn or error.
	LogLevel string
}

// Defaults returns the configuration used for anything left unset.
func Defaults() Config {
	return Config{
		DataFile: domain.DefaultDataFile,
		LogLevel: "info",
	}
}

// Load reads the optional env files (".env" when none are given), then the
// environment, and fills the gaps from Defaults.
func Load(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	cfg := &Config{
		DataFile: os.Getenv(EnvDataFile),
		LogLevel: os.Getenv(EnvLogLevel),
	}
	if err := mergo.Merge(cfg, Defaults()); err != nil {
		return nil, fmt.Errorf("apply config defaults: %w", err)
	}
	return cfg, nil
}

// Override replaces every field set in o, typically from command line flags.
func (c *Config) Override(o Config) error {
	if err := mergo.Merge(c, o, mergo.WithOverride); err != nil {
		return fmt.Errorf("apply config overrides: %w", err)
	}
	return nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.DataFile) == "" {
		errors = append(errors, "data file path cannot be empty")
	} else if info, err := os.Stat(c.DataFile); err == nil && info.IsDir() {
		errors = append(errors, fmt.Sprintf("data file '%s' is a directory", c.DataFile))
	}

	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// loadEnvFiles loads env files for local use. A missing default .env is fine;
// a file named explicitly must exist. Already-set variables are not replaced.
func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load env files %v: %w", files, err)
	}
	return nil
}
