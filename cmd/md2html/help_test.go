package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	out := buf.String()

	for _, want := range []string{
		"Usage: md2html",
		"--output",
		"--config",
		"--workers",
		"--no-style",
		"--theme",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q", want)
		}
	}

	// Built-in style names are listed so users can discover them.
	if !strings.Contains(out, "default") || !strings.Contains(out, "github") {
		t.Errorf("usage does not list built-in styles:\n%s", out)
	}
}
