package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ignition/internal/errors"
)

func TestLoadFromEnv_Output(t *testing.T) {
	t.Setenv("IGNITION_OUTPUT", "/tmp/event.txt")
	cfg := Default()
	LoadFromEnv(cfg)
	if cfg.Output != "/tmp/event.txt" {
		t.Errorf("Output = %q, want %q", cfg.Output, "/tmp/event.txt")
	}
}

func TestLoadFromEnv_Diagnostics(t *testing.T) {
	t.Setenv("IGNITION_LEVEL", "debug")
	t.Setenv("IGNITION_VERBOSE", "2")
	t.Setenv("IGNITION_METRICS", "prom")
	cfg := Default()
	LoadFromEnv(cfg)
	if cfg.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Level)
	}
	if cfg.Verbose != 2 {
		t.Errorf("Verbose = %d, want 2", cfg.Verbose)
	}
	if cfg.Metrics != "prom" {
		t.Errorf("Metrics = %q, want prom", cfg.Metrics)
	}
}

func TestLoadFromEnv_InvalidInt(t *testing.T) {
	t.Setenv("IGNITION_VERBOSE", "lots")
	cfg := &Config{Verbose: 1}
	LoadFromEnv(cfg)
	if cfg.Verbose != 1 {
		t.Errorf("Verbose = %d, should be unchanged for invalid input", cfg.Verbose)
	}
}

func TestResolveFile(t *testing.T) {
	t.Setenv("IGNITION_CONFIG", "/etc/ignition.yaml")

	if got := ResolveFile("mine.yaml"); got != "mine.yaml" {
		t.Errorf("flag should win, got %q", got)
	}
	if got := ResolveFile(""); got != "/etc/ignition.yaml" {
		t.Errorf("env fallback = %q, want /etc/ignition.yaml", got)
	}
}

func TestLoadFromEnv_EmptyIgnored(t *testing.T) {
	os.Unsetenv("IGNITION_OUTPUT")
	cfg := &Config{Output: "keep"}
	LoadFromEnv(cfg)
	if cfg.Output != "keep" {
		t.Errorf("Output = %q, should not be overwritten", cfg.Output)
	}
}

// ── Config file ──────────────────────────────────────────────────────

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ignition.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, "output: run.txt\nlevel: info\nverbose: 2\nmetrics: json\n")

	cfg := Default()
	if err := LoadFromFile(path, cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Output != "run.txt" || cfg.Level != "info" || cfg.Verbose != 2 || cfg.Metrics != "json" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadFromFile_Partial(t *testing.T) {
	path := writeFile(t, "metrics: prom\n")

	cfg := Default()
	if err := LoadFromFile(path, cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Output != DefaultOutput || cfg.Level != DefaultLevel {
		t.Errorf("absent keys should keep defaults: %+v", cfg)
	}
	if cfg.Metrics != "prom" {
		t.Errorf("Metrics = %q, want prom", cfg.Metrics)
	}
}

func TestLoadFromFile_Empty(t *testing.T) {
	path := writeFile(t, "")

	cfg := Default()
	if err := LoadFromFile(path, cfg); err != nil {
		t.Fatalf("empty file should be accepted: %v", err)
	}
}

func TestLoadFromFile_UnknownKey(t *testing.T) {
	path := writeFile(t, "outptu: typo.txt\n")

	err := LoadFromFile(path, Default())
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should name the file", err)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"), Default())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestDump_RoundTrip(t *testing.T) {
	want := &Config{Output: "out.txt", Metrics: "json", Level: "debug", Verbose: 1}

	var buf bytes.Buffer
	if err := Dump(&buf, want); err != nil {
		t.Fatal(err)
	}

	got := &Config{}
	if err := decodeYAML(buf.Bytes(), got); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if *got != *want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
