// Package md2html converts Markdown documents to standalone HTML pages.
//
// # Quick Start
//
// Create a service and convert markdown:
//
//	svc := md2html.New()
//
//	page, err := svc.Convert(ctx, md2html.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    Title:    "Greeting",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.html", []byte(page), 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line ending normalization, blank line compression)
//  2. Two-pass parsing into a document tree (markdown subpackage)
//  3. HTML rendering with chroma syntax highlighting for code blocks
//  4. Page assembly (title, stylesheet, user CSS)
//
// Parsing is total: any UTF-8 input produces a document, and constructs
// that cannot be recognized degrade to literal text rather than errors.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := md2html.New(
//	    md2html.WithTimeout(10 * time.Second),
//	    md2html.WithStyle("github"),
//	    md2html.WithHighlightTheme("monokai"),
//	)
//
// Per-conversion parameters are passed via Input: the markdown content,
// an optional page title, and optional extra CSS appended after the
// selected style.
//
// # Parallel Processing
//
// For batch conversion, use ServicePool to bound concurrency:
//
//	pool := md2html.NewServicePool(4)
//
//	svc := pool.Acquire()
//	defer pool.Release(svc)
//	page, err := svc.Convert(ctx, input)
//
// # Parsing Only
//
// Applications that want the document tree without HTML output can use
// the markdown subpackage directly:
//
//	doc := markdown.Parse(content)
package md2html
