package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvEndpoint, EnvProxy, EnvTimeout, EnvLogLevel} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	configDir := filepath.Join(home, ".config", AppName)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	got := DefaultConfig()

	if got.Endpoint != "http://127.0.0.1:5000/predict" {
		t.Fatalf("Endpoint = %q", got.Endpoint)
	}
	if got.Timeout != 30*time.Second {
		t.Fatalf("Timeout = %s, want 30s", got.Timeout)
	}
	if got.Theme != "catppuccin-mocha" {
		t.Fatalf("Theme = %q, want catppuccin-mocha", got.Theme)
	}
	if !strings.HasSuffix(got.StoragePath, filepath.Join(AppName, "storage.db")) {
		t.Fatalf("StoragePath = %q", got.StoragePath)
	}
	if !strings.HasSuffix(got.LogFile, filepath.Join(AppName, "clicksnitch.log")) {
		t.Fatalf("LogFile = %q", got.LogFile)
	}
}

func TestLoadReturnsDefaultsWhenConfigMissing(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	got := Load()
	want := DefaultConfig()

	if got != want {
		t.Fatalf("Load() = %#v, want defaults %#v", got, want)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	writeConfig(t, home, "endpoint: http://scanner.internal:8000/predict\ntimeout: 42s\ntheme: nord\n"+
		"storage_path: ~/scans.db\nproxy: socks5://127.0.0.1:9050\nno_proxy: localhost\nlog_level: debug\nlog_file: /tmp/cs.log\n")

	got := Load()

	if got.Endpoint != "http://scanner.internal:8000/predict" {
		t.Fatalf("Endpoint = %q", got.Endpoint)
	}
	if got.Timeout != 42*time.Second {
		t.Fatalf("Timeout = %s, want 42s", got.Timeout)
	}
	if got.Theme != "nord" {
		t.Fatalf("Theme = %q, want nord", got.Theme)
	}
	if got.StoragePath != filepath.Join(home, "scans.db") {
		t.Fatalf("StoragePath = %q, want ~ expanded", got.StoragePath)
	}
	if got.Proxy != "socks5://127.0.0.1:9050" || got.NoProxy != "localhost" {
		t.Fatalf("Proxy = %q, NoProxy = %q", got.Proxy, got.NoProxy)
	}
	if got.LogLevel != "debug" || got.LogFile != "/tmp/cs.log" {
		t.Fatalf("LogLevel = %q, LogFile = %q", got.LogLevel, got.LogFile)
	}
}

func TestLoadMergesPartialConfigWithDefaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, "theme: gruvbox\n")

	got := Load()
	want := DefaultConfig()
	want.Theme = "gruvbox"

	if got != want {
		t.Fatalf("Load() = %#v, want %#v", got, want)
	}
}

func TestLoadInvalidYAMLKeepsDefaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, "theme: [\n")

	got := Load()
	want := DefaultConfig()

	if got != want {
		t.Fatalf("Load() = %#v, want defaults %#v", got, want)
	}
}

func TestApplyEnv(t *testing.T) {
	clearEnv(t)
	dotenv := filepath.Join(t.TempDir(), ".env")
	content := "CLICKSNITCH_ENDPOINT=http://from-dotenv/predict\nCLICKSNITCH_TIMEOUT=5s\nCLICKSNITCH_PROXY=http://proxy:3128\n"
	if err := os.WriteFile(dotenv, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvEndpoint, "http://from-env/predict")

	got := ApplyEnv(DefaultConfig(), dotenv)

	if got.Endpoint != "http://from-env/predict" {
		t.Errorf("Endpoint = %q, process env should win", got.Endpoint)
	}
	if got.Timeout != 5*time.Second {
		t.Errorf("Timeout = %s, want 5s from .env", got.Timeout)
	}
	if got.Proxy != "http://proxy:3128" {
		t.Errorf("Proxy = %q", got.Proxy)
	}
}

func TestApplyEnvBlankVariableKeepsDotenv(t *testing.T) {
	clearEnv(t)
	dotenv := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(dotenv, []byte("CLICKSNITCH_TIMEOUT=5s\nCLICKSNITCH_LOG_LEVEL=debug\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvTimeout, "")
	t.Setenv(EnvLogLevel, "   ")

	got := ApplyEnv(DefaultConfig(), dotenv)

	if got.Timeout != 5*time.Second {
		t.Errorf("Timeout = %s, want 5s from .env", got.Timeout)
	}
	if got.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug from .env", got.LogLevel)
	}
}

func TestApplyEnvIgnoresBadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTimeout, "soon")

	got := ApplyEnv(DefaultConfig(), "")
	if got.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s, want default", got.Timeout)
	}
}

func TestLoadFileReadsTLSSection(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "config.yaml")
	content := "tls:\n  ca_file: ~/certs/ca.pem\n  insecure_skip_verify: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got := LoadFile(path)

	if got.TLS.CAFile != filepath.Join(home, "certs", "ca.pem") {
		t.Fatalf("TLS.CAFile = %q, want ~ expanded", got.TLS.CAFile)
	}
	if !got.TLS.InsecureSkipVerify {
		t.Fatal("TLS.InsecureSkipVerify = false")
	}
	if got.TLS.CertFile != "" || got.TLS.KeyFile != "" {
		t.Fatalf("unexpected client cert %q / %q", got.TLS.CertFile, got.TLS.KeyFile)
	}
}
