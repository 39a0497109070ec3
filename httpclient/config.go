package httpclient

import (
	"fmt"
	"time"

	"github.com/kbukum/restkit/security"
)

const defaultTimeout = 30 * time.Second

// Config configures the HTTP transport adapter.
type Config struct {
	// Name identifies the adapter in logs and telemetry.
	Name string `yaml:"name" mapstructure:"name"`

	// Timeout is the per-request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// TLS configures TLS settings for the transport.
	TLS *security.TLSConfig `yaml:"tls" mapstructure:"tls"`

	// H2C enables cleartext HTTP/2. Mutually exclusive with TLS.
	H2C bool `yaml:"h2c" mapstructure:"h2c"`

	// Headers are default headers applied to every request. Request
	// headers with the same name win.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Name == "" {
		c.Name = "http"
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	if c.H2C && c.TLS != nil {
		return fmt.Errorf("httpclient: h2c and tls are mutually exclusive")
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}
