// Package config loads client configuration from YAML files and the
// environment. YAML provides the base values, a .env file may add to the
// process environment, and environment variables override both.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Options holds optional overrides for Load.
type Options struct {
	// ConfigFile is an explicit config file path. When empty, standard
	// locations are searched (./config.yml, ./config/config.yml).
	ConfigFile string
	// EnvFile is an explicit .env file path. When empty, ./.env is used
	// if it exists.
	EnvFile string
	// EnvPrefix namespaces environment variables (e.g. "RESTKIT" binds
	// RESTKIT_ENDPOINT to the "endpoint" key). Empty means no prefix.
	EnvPrefix string
}

// Option is a functional option for Load.
type Option func(*Options)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) Option {
	return func(o *Options) { o.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) Option {
	return func(o *Options) { o.EnvFile = path }
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(o *Options) { o.EnvPrefix = prefix }
}

// Load populates cfg from YAML and environment sources. The name is used
// in error messages only. Missing files are not an error; an unreadable
// explicit file is.
func Load(name string, cfg any, opts ...Option) error {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	if err := loadEnvFile(o); err != nil {
		return fmt.Errorf("config: load env for %s: %w", name, err)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if o.EnvPrefix != "" {
		v.SetEnvPrefix(o.EnvPrefix)
	}
	v.AutomaticEnv()

	file := o.ConfigFile
	if file == "" {
		file = findConfigFile()
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			if o.ConfigFile != "" {
				return fmt.Errorf("config: read %s: %w", file, err)
			}
			// Discovered files are best-effort.
		}
	}

	bindEnvVars(v, o.EnvPrefix)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal %s: %w", name, err)
	}
	return nil
}

// loadEnvFile loads the .env file into the process environment.
func loadEnvFile(o Options) error {
	file := o.EnvFile
	if file == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		file = ".env"
	}
	return godotenv.Load(file)
}

// findConfigFile searches standard locations for a config file.
func findConfigFile() string {
	for _, path := range []string{"./config.yml", "./config.yaml", "./config/config.yml"} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// bindEnvVars sets every environment variable into viper under dotted and
// underscored key variants, so env-only keys survive Unmarshal even when
// no config file was read.
func bindEnvVars(v *viper.Viper, prefix string) {
	envPrefix := ""
	if prefix != "" {
		envPrefix = strings.ToUpper(prefix) + "_"
	}
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		key := pair[0]
		if envPrefix != "" {
			if !strings.HasPrefix(key, envPrefix) {
				continue
			}
			key = strings.TrimPrefix(key, envPrefix)
		}
		lower := strings.ToLower(key)
		v.Set(lower, pair[1])
		if dotted := strings.ReplaceAll(lower, "_", "."); dotted != lower {
			v.Set(dotted, pair[1])
		}
	}
}
