package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfig writes YAML content to a temp file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_Full(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
input:
  defaultDir: docs
output:
  defaultDir: site
render:
  title: My Site
  style: github
  cssFile: extra.css
  highlightTheme: monokai
workers: 4
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Input.DefaultDir != "docs" {
		t.Errorf("Input.DefaultDir = %q, want %q", cfg.Input.DefaultDir, "docs")
	}
	if cfg.Output.DefaultDir != "site" {
		t.Errorf("Output.DefaultDir = %q, want %q", cfg.Output.DefaultDir, "site")
	}
	if cfg.Render.Title != "My Site" {
		t.Errorf("Render.Title = %q, want %q", cfg.Render.Title, "My Site")
	}
	if cfg.Render.Style != "github" {
		t.Errorf("Render.Style = %q, want %q", cfg.Render.Style, "github")
	}
	if cfg.Render.HighlightTheme != "monokai" {
		t.Errorf("Render.HighlightTheme = %q, want %q", cfg.Render.HighlightTheme, "monokai")
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
}

func TestLoadConfig_EmptyName(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig("")
	if !errors.Is(err, ErrEmptyConfigName) {
		t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig(missing) error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfig_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "unknownField: value\n")
	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("LoadConfig(unknown field) error = %v, want ErrConfigParse", err)
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "render: [not a mapping\n")
	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("LoadConfig(malformed) error = %v, want ErrConfigParse", err)
	}
}

func TestValidate_FieldTooLong(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Render.Title = strings.Repeat("x", MaxTitleLength+1)
	if err := cfg.Validate(); !errors.Is(err, ErrFieldTooLong) {
		t.Errorf("Validate() error = %v, want ErrFieldTooLong", err)
	}
}

func TestValidate_Workers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
		wantErr bool
	}{
		{name: "zero is auto", workers: 0, wantErr: false},
		{name: "explicit", workers: 8, wantErr: false},
		{name: "negative", workers: -1, wantErr: true},
		{name: "over cap", workers: MaxWorkers + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			cfg.Workers = tt.workers
			err := cfg.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidWorkers) {
				t.Errorf("Validate() error = %v, want ErrInvalidWorkers", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestDefaultConfig_Validates(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}
