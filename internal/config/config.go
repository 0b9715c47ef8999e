// Package config provides centralized configuration for the GitFlowSim backend.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when read from the environment,
// e.g. GITFLOWSIM_ADDR or GITFLOWSIM_SESSION_TTL.
const EnvPrefix = "GITFLOWSIM"

// Config holds application-wide configuration.
type Config struct {
	// Addr is the listen address of the HTTP API.
	Addr string `mapstructure:"addr"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// LogFile enables rotating file output in addition to the console.
	LogFile string `mapstructure:"log_file"`
	// MissionDir overrides the built-in missions. Empty uses the built-in set.
	MissionDir string `mapstructure:"mission_dir"`
	// SessionTTL is how long an idle session is kept. Zero keeps sessions forever.
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Addr:       ":8080",
		LogLevel:   "info",
		SessionTTL: 2 * time.Hour,
	}
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("addr", d.Addr)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("mission_dir", d.MissionDir)
	v.SetDefault("session_ttl", d.SessionTTL)
}

// Load resolves the configuration from defaults, an optional config file and
// the environment, in increasing order of precedence. Flags bound to v by the
// caller take precedence over all of them.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports values that cannot be used.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("session_ttl must not be negative, got %s", c.SessionTTL)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
