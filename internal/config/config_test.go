package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LEDGER_FILE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8081" {
		t.Fatalf("expected default port 8081, got %s", cfg.Port)
	}
	if cfg.LedgerFile != "finance_data.csv" {
		t.Fatalf("expected default ledger file, got %s", cfg.LedgerFile)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LEDGER_FILE", "/tmp/ledger.csv")
	t.Setenv("LOG_LEVEL", "debug")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9000" || cfg.LedgerFile != "/tmp/ledger.csv" || cfg.LogLevel != "debug" {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{Port: "8081", LedgerFile: "finance_data.csv", LogLevel: "info"}, ""},
		{"bad port", Config{Port: "abc", LedgerFile: "f.csv", LogLevel: "info"}, "invalid port"},
		{"port out of range", Config{Port: "70000", LedgerFile: "f.csv", LogLevel: "info"}, "invalid port"},
		{"empty ledger file", Config{Port: "8081", LedgerFile: "", LogLevel: "info"}, "ledger file path"},
		{"bad log level", Config{Port: "8081", LedgerFile: "f.csv", LogLevel: "loud"}, "invalid log level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected ok, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateCreatesLedgerDir(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{Port: "8081", LedgerFile: filepath.Join(dir, "nested", "finance_data.csv"), LogLevel: "info"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
}
