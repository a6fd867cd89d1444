package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contractflow.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Endpoint != "http://localhost:8080/webhook" {
		t.Fatalf("endpoint = %q", cfg.Endpoint)
	}
	if cfg.Timeout() != 0 {
		t.Fatalf("default timeout = %s, want none", cfg.Timeout())
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "endpoint: https://contratos.example.cl/webhook\ntimeout_seconds: 30\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Endpoint != "https://contratos.example.cl/webhook" {
		t.Fatalf("endpoint = %q", cfg.Endpoint)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Fatalf("timeout = %s", cfg.Timeout())
	}
}

func TestLoad_RejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"blank endpoint":   "endpoint: \"\"\n",
		"negative timeout": "endpoint: https://x.cl/webhook\ntimeout_seconds: -1\n",
		"malformed yaml":   "endpoint: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, body)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
