package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, DefaultHost)
	}
	if cfg.Metrics.Namespace != DefaultMetricsNamespace {
		t.Errorf("Metrics.Namespace = %q, want %q", cfg.Metrics.Namespace, DefaultMetricsNamespace)
	}
	if cfg.Diagnostics.Enabled {
		t.Error("Diagnostics.Enabled should default to false")
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	// Loading a non-existent config fails
	if _, err := Load(tmpDir); err == nil {
		t.Error("Expected error for missing config")
	}

	configPath := filepath.Join(tmpDir, ConfigFileName)
	configJSON := `{
  "name": "demo",
  "server": {
    "port": 8080,
    "host": "0.0.0.0"
  },
  "diagnostics": {
    "enabled": true
  },
  "report": {
    "bucket": "reports-bucket"
  }
}`
	if err := os.WriteFile(configPath, []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Name != "demo" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q", cfg.Server.Host)
	}
	if !cfg.Diagnostics.Enabled {
		t.Error("Diagnostics.Enabled = false")
	}
	if !cfg.HasReportStore() {
		t.Error("HasReportStore() = false with a bucket set")
	}
	// Unset fields fall back to defaults.
	if cfg.Metrics.Namespace != DefaultMetricsNamespace {
		t.Errorf("Metrics.Namespace = %q, want default", cfg.Metrics.Namespace)
	}
	if cfg.Report.Prefix != "reports/" {
		t.Errorf("Report.Prefix = %q, want default", cfg.Report.Prefix)
	}
	if cfg.Path() != configPath {
		t.Errorf("Path() = %q, want %q", cfg.Path(), configPath)
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), tmpDir)
	}
}

func TestLoadMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte(`{not json`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(tmpDir)
	if err == nil {
		t.Fatal("Expected error for malformed config")
	}
	if !strings.Contains(err.Error(), "H120") {
		t.Errorf("error = %v, want H120", err)
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	cfg := New()
	cfg.Name = "saved"
	cfg.Server.Port = 4000
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	reloaded, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if reloaded.Name != "saved" || reloaded.Server.Port != 4000 {
		t.Errorf("reloaded = %+v", reloaded)
	}

	// Save without a path fails, with a path succeeds.
	if err := New().Save(); err == nil {
		t.Error("Save without path should fail")
	}
	reloaded.Server.Port = 4001
	if err := reloaded.Save(); err != nil {
		t.Errorf("Save: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := New()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate default config: %v", err)
	}

	cfg.Server.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for out-of-range port")
	}
}

func TestServerAddress(t *testing.T) {
	cfg := New()
	cfg.Server.Host = "localhost"
	cfg.Server.Port = 3000

	if got := cfg.ServerAddress(); got != "localhost:3000" {
		t.Errorf("ServerAddress() = %q", got)
	}
	if got := cfg.ServerURL(); got != "http://localhost:3000" {
		t.Errorf("ServerURL() = %q", got)
	}

	cfg.Server.HTTPS = true
	if got := cfg.ServerURL(); got != "https://localhost:3000" {
		t.Errorf("ServerURL() = %q", got)
	}
}

func TestFindProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	root, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot: %v", err)
	}
	// Resolve symlinks to compare on platforms where TempDir is linked.
	wantRoot, _ := filepath.EvalSymlinks(tmpDir)
	gotRoot, _ := filepath.EvalSymlinks(root)
	if gotRoot != wantRoot {
		t.Errorf("FindProjectRoot = %q, want %q", root, tmpDir)
	}

	if _, err := FindProjectRoot(t.TempDir()); err == nil {
		t.Error("Expected error when no config exists up the tree")
	}
}

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()
	if Exists(tmpDir) {
		t.Error("Exists = true for empty dir")
	}
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}
	if !Exists(tmpDir) {
		t.Error("Exists = false after writing config")
	}
}

func TestItoa(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{3000, "3000"},
		{-42, "-42"},
	}
	for _, tt := range tests {
		if got := itoa(tt.in); got != tt.want {
			t.Errorf("itoa(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
