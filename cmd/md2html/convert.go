package main

import (
	"context"
	"fmt"
	"os"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// run executes a conversion with the merged flag and config settings.
func run(flags *cliFlags, args []string) error {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if len(args) > 1 {
		return fmt.Errorf("expected one input path, got %d", len(args))
	}

	inputPath := ""
	if len(args) == 1 {
		inputPath = args[0]
	}
	if inputPath == "" {
		inputPath = cfg.Input.DefaultDir
	}
	if inputPath == "" {
		return fmt.Errorf("%w: pass a file or directory, or set input.defaultDir in config", ErrNoInput)
	}

	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	workers := flags.workers
	if workers == 0 {
		workers = cfg.Workers
	}
	if err := validateWorkers(workers); err != nil {
		return err
	}

	opts := serviceOptions(flags, cfg)

	css, err := loadUserCSS(flags, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files under %s", ErrNoInput, inputPath)
	}

	poolSize := md2html.ResolvePoolSize(workers)
	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Pool size: %d\n", poolSize)
		fmt.Fprintf(os.Stderr, "Converting %d file(s)...\n", len(files))
	}
	pool := newLibraryPool(poolSize, opts...)

	title := flags.title
	if title == "" {
		title = cfg.Render.Title
	}
	params := &conversionParams{title: title, css: css}

	results := convertBatch(context.Background(), pool, files, params)
	if failed := printResults(results, flags.quiet, flags.verbose, os.Stdout, os.Stderr); failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(results))
	}
	return nil
}

// serviceOptions builds the service options from flags and config.
// Flags override config values; unset values keep library defaults.
func serviceOptions(flags *cliFlags, cfg *config.Config) []md2html.Option {
	var opts []md2html.Option

	style := flags.style
	if style == "" {
		style = cfg.Render.Style
	}
	switch {
	case flags.noStyle:
		opts = append(opts, md2html.WithStyle(""))
	case style != "":
		opts = append(opts, md2html.WithStyle(style))
	}

	theme := flags.theme
	if theme == "" {
		theme = cfg.Render.HighlightTheme
	}
	if theme != "" {
		opts = append(opts, md2html.WithHighlightTheme(theme))
	}

	if flags.timeout > 0 {
		opts = append(opts, md2html.WithTimeout(flags.timeout))
	}

	return opts
}

// loadUserCSS reads the extra CSS file named by flags or config, if any.
func loadUserCSS(flags *cliFlags, cfg *config.Config) (string, error) {
	cssFile := flags.css
	if cssFile == "" {
		cssFile = cfg.Render.CSSFile
	}
	if cssFile == "" {
		return "", nil
	}

	content, err := fileutil.ReadText(cssFile)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return content, nil
}
