package rest

import (
	"time"

	"github.com/kbukum/restkit/security"
	"github.com/kbukum/restkit/validation"
)

// Config configures a Client built via FromConfig. It is designed to be
// populated from YAML/env through the config package.
type Config struct {
	// Endpoint is the base URI all resource paths are joined onto.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint" validate:"required,url"`

	// BodyType selects payload encoding: "form" (default) or "json".
	BodyType string `yaml:"body_type" mapstructure:"body_type" validate:"omitempty,oneof=form json"`

	// Timeout is the per-request timeout passed to the transport.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// TLS configures TLS settings for the transport.
	TLS *security.TLSConfig `yaml:"tls" mapstructure:"tls"`

	// H2C enables cleartext HTTP/2 on the transport.
	H2C bool `yaml:"h2c" mapstructure:"h2c"`

	// Headers are default headers the transport applies to every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.BodyType == "" {
		c.BodyType = "form"
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	return c.TLS.Validate()
}
