package main

import (
	"os"
	"time"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command line flags.
type cliFlags struct {
	output  string
	config  string
	style   string
	noStyle bool
	css     string
	theme   string
	title   string
	workers int
	timeout time.Duration
	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses command line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.style, "style", "", "built-in stylesheet name")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable CSS styling")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended after the style")
	fs.StringVar(&f.theme, "theme", "", "chroma theme for code blocks")
	fs.StringVar(&f.title, "title", "", "page title (default: file name)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.DurationVarP(&f.timeout, "timeout", "t", 0, "per-file conversion timeout (e.g., 30s)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
