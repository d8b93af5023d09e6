// Package config loads a client configuration from CKO_* environment
// variables, optionally preloaded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/vitwit/checkout/types"
	"github.com/vitwit/checkout/utils"
)

// EnvPrefix is prepended to every variable name, e.g. CKO_SECRET_KEY.
const EnvPrefix = "CKO"

const (
	EnvEnvironment   = EnvPrefix + "_ENVIRONMENT"
	EnvHost          = EnvPrefix + "_HOST"
	EnvSecretKey     = EnvPrefix + "_SECRET_KEY"
	EnvPublicKey     = EnvPrefix + "_PUBLIC_KEY"
	EnvClientID      = EnvPrefix + "_CLIENT_ID"
	EnvClientSecret  = EnvPrefix + "_CLIENT_SECRET"
	EnvTimeout       = EnvPrefix + "_TIMEOUT"
	EnvHeaders       = EnvPrefix + "_HEADERS"
	EnvLogLevel      = EnvPrefix + "_LOG_LEVEL"
	EnvEnableMetrics = EnvPrefix + "_ENABLE_METRICS"
)

// DefaultEnvFile is preloaded by Load when it exists.
const DefaultEnvFile = ".env"

// Load reads the configuration from the environment after loading
// DefaultEnvFile if present. Variables already set win over the file.
func Load() (*types.ClientConfig, error) {
	if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", DefaultEnvFile, err)
	}
	return process()
}

// LoadFiles is like Load but every file must exist.
func LoadFiles(files ...string) (*types.ClientConfig, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return nil, fmt.Errorf("loading env files: %w", err)
		}
	}
	return process()
}

func process() (*types.ClientConfig, error) {
	var cfg types.ClientConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := utils.ValidateClientConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
