package config

import (
	"os"
	"path/filepath"
	"testing"
)

type clientConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	BodyType string `mapstructure:"body_type"`
	Timeout  string `mapstructure:"timeout"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_FromYAML(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "config.yml", "endpoint: http://api.test\nbody_type: json\n")

	var cfg clientConfig
	if err := Load("test", &cfg, WithConfigFile(file)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Endpoint != "http://api.test" {
		t.Errorf("endpoint = %q, want http://api.test", cfg.Endpoint)
	}
	if cfg.BodyType != "json" {
		t.Errorf("body_type = %q, want json", cfg.BodyType)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "config.yml", "endpoint: http://from-file.test\n")

	t.Setenv("RESTKIT_ENDPOINT", "http://from-env.test")

	var cfg clientConfig
	if err := Load("test", &cfg, WithConfigFile(file), WithEnvPrefix("RESTKIT")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Endpoint != "http://from-env.test" {
		t.Errorf("endpoint = %q, want env value", cfg.Endpoint)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "RESTKIT_BODY_TYPE=form\n")

	var cfg clientConfig
	if err := Load("test", &cfg, WithEnvFile(envFile), WithEnvPrefix("RESTKIT")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BodyType != "form" {
		t.Errorf("body_type = %q, want form", cfg.BodyType)
	}
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	var cfg clientConfig
	if err := Load("test", &cfg, WithConfigFile("/does/not/exist.yml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoad_NoSourcesIsFine(t *testing.T) {
	var cfg clientConfig
	if err := Load("test", &cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
