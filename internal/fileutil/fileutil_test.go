package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(path) {
		t.Error("FileExists(existing file) = false")
	}
	if FileExists(filepath.Join(dir, "missing.txt")) {
		t.Error("FileExists(missing file) = true")
	}
	if FileExists(dir) {
		t.Error("FileExists(directory) = true")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"github", false},
		{"./custom.css", true},
		{"../shared/style.css", true},
		{"/absolute/path.css", true},
		{`C:\windows\path.css`, true},
		{"my-style", false},
	}

	for _, tt := range tests {
		if got := IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestReadText(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte("# hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadText(path)
	if err != nil {
		t.Fatalf("ReadText() error: %v", err)
	}
	if got != "# hello\n" {
		t.Errorf("ReadText() = %q, want %q", got, "# hello\n")
	}
}

func TestReadText_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadText(filepath.Join(t.TempDir(), "missing.md"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadText(missing) error = %v, want os.ErrNotExist", err)
	}
}
