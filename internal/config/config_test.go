package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Serve.Port != DefaultPort {
		t.Errorf("Serve.Port = %d, want %d", cfg.Serve.Port, DefaultPort)
	}
	if cfg.Serve.Host != DefaultHost {
		t.Errorf("Serve.Host = %q, want %q", cfg.Serve.Host, DefaultHost)
	}
	if cfg.Render.Output != DefaultOutput {
		t.Errorf("Render.Output = %q, want %q", cfg.Render.Output, DefaultOutput)
	}
	if !cfg.Format.Pretty {
		t.Error("Format.Pretty should default to true")
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	// Missing config is an error.
	if _, err := Load(tmpDir); err == nil {
		t.Error("expected error for missing config")
	}

	configJSON := `{
  "name": "demo",
  "serve": {
    "port": 8080,
    "host": "0.0.0.0",
    "maxSessions": 10,
    "heartbeat": "5s"
  },
  "render": {
    "output": "render.png",
    "width": 640,
    "height": 480
  }
}
`
	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Name != "demo" {
		t.Errorf("Name = %q, want %q", cfg.Name, "demo")
	}
	if cfg.Serve.Port != 8080 {
		t.Errorf("Serve.Port = %d, want 8080", cfg.Serve.Port)
	}
	if cfg.Serve.Host != "0.0.0.0" {
		t.Errorf("Serve.Host = %q, want 0.0.0.0", cfg.Serve.Host)
	}
	if cfg.Serve.MaxSessions != 10 {
		t.Errorf("Serve.MaxSessions = %d, want 10", cfg.Serve.MaxSessions)
	}
	if cfg.Render.Output != "render.png" {
		t.Errorf("Render.Output = %q, want render.png", cfg.Render.Output)
	}
	if cfg.Render.Width != 640 || cfg.Render.Height != 480 {
		t.Errorf("Render size = %dx%d, want 640x480", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Path() != configPath {
		t.Errorf("Path = %q, want %q", cfg.Path(), configPath)
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir = %q, want %q", cfg.Dir(), tmpDir)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte(`{"name":"sparse"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Serve.Port != DefaultPort {
		t.Errorf("Serve.Port = %d, want default %d", cfg.Serve.Port, DefaultPort)
	}
	if cfg.Serve.Host != DefaultHost {
		t.Errorf("Serve.Host = %q, want default %q", cfg.Serve.Host, DefaultHost)
	}
	if cfg.Serve.Heartbeat != "30s" {
		t.Errorf("Serve.Heartbeat = %q, want 30s", cfg.Serve.Heartbeat)
	}
	if cfg.Render.Output != DefaultOutput {
		t.Errorf("Render.Output = %q, want default %q", cfg.Render.Output, DefaultOutput)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tmpDir); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := New()
	cfg.Name = "saved"
	cfg.Serve.Port = 9999

	path := filepath.Join(tmpDir, FileName)
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}

	loaded, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Name != "saved" {
		t.Errorf("Name = %q, want saved", loaded.Name)
	}
	if loaded.Serve.Port != 9999 {
		t.Errorf("Serve.Port = %d, want 9999", loaded.Serve.Port)
	}
}

func TestSaveWithoutPath(t *testing.T) {
	cfg := New()
	if err := cfg.Save(); err == nil {
		t.Error("expected error saving config with no path")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"port too large", func(c *Config) { c.Serve.Port = 70000 }, true},
		{"negative port", func(c *Config) { c.Serve.Port = -1 }, true},
		{"negative sessions", func(c *Config) { c.Serve.MaxSessions = -1 }, true},
		{"bad heartbeat", func(c *Config) { c.Serve.Heartbeat = "soon" }, true},
		{"negative render size", func(c *Config) { c.Render.Width = -5 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestServeAddress(t *testing.T) {
	cfg := New()
	cfg.Serve.Host = "127.0.0.1"
	cfg.Serve.Port = 8123
	if got := cfg.ServeAddress(); got != "127.0.0.1:8123" {
		t.Errorf("ServeAddress = %q", got)
	}
}

func TestHeartbeatInterval(t *testing.T) {
	cfg := New()
	cfg.Serve.Heartbeat = "45s"
	if got := cfg.HeartbeatInterval(); got != 45*time.Second {
		t.Errorf("HeartbeatInterval = %v, want 45s", got)
	}
}

func TestFindProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	root, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot error: %v", err)
	}
	// Resolve symlinks so macOS /var vs /private/var agree.
	wantRoot, _ := filepath.EvalSymlinks(tmpDir)
	gotRoot, _ := filepath.EvalSymlinks(root)
	if gotRoot != wantRoot {
		t.Errorf("root = %q, want %q", gotRoot, wantRoot)
	}
}

func TestFindProjectRootMissing(t *testing.T) {
	tmpDir := t.TempDir()
	if _, err := FindProjectRoot(tmpDir); err == nil {
		t.Error("expected error when no config exists above start dir")
	}
}

func TestOutputPath(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte(`{"render":{"output":"img/x.png"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	want := filepath.Join(tmpDir, "img", "x.png")
	if got := cfg.OutputPath(); got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}

	cfg.Render.Output = "/abs/y.png"
	if got := cfg.OutputPath(); got != "/abs/y.png" {
		t.Errorf("OutputPath = %q, want /abs/y.png", got)
	}
}
