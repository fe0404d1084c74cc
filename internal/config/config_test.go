package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type fakePlatform struct {
	os      string
	env     map[string]string
	home    string
	err     error
	created *[]string
}

func (p fakePlatform) OS() string               { return p.os }
func (p fakePlatform) Env(key string) string    { return p.env[key] }
func (p fakePlatform) HomeDir() (string, error) { return p.home, p.err }

func (p fakePlatform) MkdirAll(dir string) error {
	if p.created != nil {
		*p.created = append(*p.created, dir)
	}
	return nil
}

// IsFile checks the real filesystem so Load tests can use temp dirs
func (p fakePlatform) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Layout.Kind != LayoutLinear {
		t.Errorf("Default Layout.Kind = %q, want %q", cfg.Layout.Kind, LayoutLinear)
	}
	if cfg.Layout.SpanCount != 2 {
		t.Errorf("Default Layout.SpanCount = %d, want 2", cfg.Layout.SpanCount)
	}
	if cfg.Data.Sample != 10 {
		t.Errorf("Default Data.Sample = %d, want 10", cfg.Data.Sample)
	}
	if cfg.Decorations.Header == "" {
		t.Error("Default header should be set")
	}
	if cfg.HasFile() {
		t.Error("Default config should not read an items file")
	}
	if err := checkVersion(cfg.Version); err != nil {
		t.Errorf("Default version rejected: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, `
version: "1.2.0"
layout:
  kind: grid
  spanCount: 3
  height: 12
decorations:
  header: "Top"
  footer: "Bottom"
  empty: ""
data:
  file: items.txt
log:
  level: debug
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Layout.Kind != LayoutGrid || cfg.Layout.SpanCount != 3 || cfg.Layout.Height != 12 {
		t.Errorf("Layout = %+v, want grid/3/12", cfg.Layout)
	}
	if cfg.Decorations.Header != "Top" || cfg.Decorations.Footer != "Bottom" || cfg.Decorations.Empty != "" {
		t.Errorf("Decorations = %+v", cfg.Decorations)
	}
	if !cfg.HasFile() || cfg.Data.File != "items.txt" {
		t.Errorf("Data.File = %q, want items.txt", cfg.Data.File)
	}
	if cfg.Data.Sample != 10 {
		t.Errorf("Data.Sample = %d, want default 10", cfg.Data.Sample)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadFileNormalizes(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "unknown layout falls back to linear",
			content: "layout:\n  kind: spiral\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Layout.Kind != LayoutLinear {
					t.Errorf("Layout.Kind = %q, want linear", cfg.Layout.Kind)
				}
			},
		},
		{
			name:    "zero span count",
			content: "layout:\n  kind: staggered\n  spanCount: 0\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Layout.SpanCount != 2 {
					t.Errorf("Layout.SpanCount = %d, want 2", cfg.Layout.SpanCount)
				}
			},
		},
		{
			name:    "negative values",
			content: "layout:\n  height: -4\ndata:\n  sample: -1\nlog:\n  level: \"\"\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Layout.Height != 0 || cfg.Data.Sample != 0 || cfg.Log.Level != "info" {
					t.Errorf("normalized = %+v %+v %+v", cfg.Layout, cfg.Data, cfg.Log)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			writeConfig(t, path, tt.content)
			cfg, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadFileVersion(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{"1.0.0", false},
		{"1.9", false},
		{"2.0.0", true},
		{"0.9.0", true},
		{"banana", true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			writeConfig(t, path, "version: \""+tt.version+"\"\n")

			_, err := LoadFile(path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedVersion) {
					t.Errorf("LoadFile(version %s) error = %v, want ErrUnsupportedVersion", tt.version, err)
				}
			} else if err != nil {
				t.Errorf("LoadFile(version %s) error = %v", tt.version, err)
			}
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile(missing) should fail")
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "layout: [unclosed")
	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile(invalid yaml) should fail")
	}
}

func TestLoadPriority(t *testing.T) {
	projectDir := t.TempDir()
	home := t.TempDir()
	platform := fakePlatform{os: "linux", home: home}

	cfg, err := LoadWithPlatform(projectDir, platform)
	if err != nil {
		t.Fatalf("LoadWithPlatform() error = %v", err)
	}
	if cfg.Layout.Kind != LayoutLinear {
		t.Errorf("without files Layout.Kind = %q, want default", cfg.Layout.Kind)
	}

	writeConfig(t, GlobalConfigPathWithPlatform(platform), "layout:\n  kind: grid\n")
	cfg, err = LoadWithPlatform(projectDir, platform)
	if err != nil {
		t.Fatalf("LoadWithPlatform() error = %v", err)
	}
	if cfg.Layout.Kind != LayoutGrid {
		t.Errorf("global Layout.Kind = %q, want grid", cfg.Layout.Kind)
	}

	writeConfig(t, ProjectConfigPath(projectDir), "layout:\n  kind: staggered\n")
	cfg, err = LoadWithPlatform(projectDir, platform)
	if err != nil {
		t.Fatalf("LoadWithPlatform() error = %v", err)
	}
	if cfg.Layout.Kind != LayoutStaggered {
		t.Errorf("project Layout.Kind = %q, want staggered", cfg.Layout.Kind)
	}
}

func TestLoadNoHome(t *testing.T) {
	platform := fakePlatform{os: "linux", err: errors.New("no home")}
	cfg, err := LoadWithPlatform(t.TempDir(), platform)
	if err != nil {
		t.Fatalf("LoadWithPlatform() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadWithPlatform() returned nil config")
	}
}
