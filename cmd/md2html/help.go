package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-md2html/internal/assets"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>    Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>      Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>      Per-file conversion timeout (e.g., 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintf(w, "      --style <name>     Built-in stylesheet: %s\n", strings.Join(assets.Names(), ", "))
	fmt.Fprintln(w, "      --no-style         Disable CSS styling")
	fmt.Fprintln(w, "      --css <path>       Extra CSS file appended after the style")
	fmt.Fprintln(w, "      --theme <name>     Chroma theme for code blocks")
	fmt.Fprintln(w, "      --title <s>        Page title (default: file name)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show detailed timing")
	fmt.Fprintln(w, "      --version          Show version and exit")
}
