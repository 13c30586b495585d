package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	skynet "gopkg.in/vansante/go-skynet.v1"
)

var (
	ErrReadConfig    = errors.New("error reading config")
	ErrInvalidConfig = errors.New("invalid config")
)

// Config is the configuration of the skylink command
type Config struct {
	Portal  string
	Options skynet.Options
}

// Default returns the configuration used when nothing else has been set
func Default() Config {
	return Config{
		Portal:  skynet.DefaultSkynetPortalURL,
		Options: skynet.DefaultOptions(""),
	}
}

// Load reads the YAML config file at path and applies it on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w %s: %w", ErrReadConfig, path, err)
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, fmt.Errorf("%w %s: %w", ErrInvalidConfig, path, err)
	}

	if y.Portal != "" {
		cfg.Portal = y.Portal
	}
	if y.APIKey != "" {
		cfg.Options.APIKey = y.APIKey
	}
	if y.CustomUserAgent != "" {
		cfg.Options.CustomUserAgent = y.CustomUserAgent
	}
	return cfg, nil
}

// WithEnvironment overrides the portal with the origin reported by the environment, if any
func (c Config) WithEnvironment(env skynet.Environment) Config {
	if env == nil {
		return c
	}
	if origin, ok := env.Origin(); ok && origin != "" {
		c.Portal = origin
	}
	return c
}

type yamlConfig struct {
	Portal          string `yaml:"portal"`
	APIKey          string `yaml:"api_key"`
	CustomUserAgent string `yaml:"custom_user_agent"`
}
