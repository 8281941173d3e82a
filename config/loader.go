package config

// loader.go - configuration loading from environment variables and
// YAML files.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables
//   3. Config file
//   4. Defaults   (defaults.go)

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ── Environment variable mapping ─────────────────────────────────────

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  This should be called BEFORE
// CLI flag parsing so that flags take precedence.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv(EnvPrefix + "METRICS"); v != "" {
		cfg.Metrics = v
	}
	if v := os.Getenv(EnvPrefix + "LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := envInt(EnvPrefix + "VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
}

// ResolveFile picks the config file path: the --config flag if set,
// otherwise IGNITION_CONFIG.  Empty means no file.
func ResolveFile(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvPrefix + "CONFIG")
}

// ── Config file ──────────────────────────────────────────────────────

// fileConfig mirrors the YAML document.  Pointers distinguish "absent"
// from zero values so a file only overrides what it mentions.
type fileConfig struct {
	Output  *string `yaml:"output"`
	Metrics *string `yaml:"metrics"`
	Level   *string `yaml:"level"`
	Verbose *int    `yaml:"verbose"`
}

// LoadFromFile reads the YAML file at path and overlays it onto cfg.
func LoadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	if err := decodeYAML(data, cfg); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && err != io.EOF {
		return err
	}

	if fc.Output != nil {
		cfg.Output = *fc.Output
	}
	if fc.Metrics != nil {
		cfg.Metrics = *fc.Metrics
	}
	if fc.Level != nil {
		cfg.Level = *fc.Level
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	return nil
}

// Dump writes cfg to w in the same YAML shape LoadFromFile accepts.
func Dump(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fileConfig{
		Output:  &cfg.Output,
		Metrics: &cfg.Metrics,
		Level:   &cfg.Level,
		Verbose: &cfg.Verbose,
	}); err != nil {
		return err
	}
	return enc.Close()
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
