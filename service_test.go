package md2html

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	svc := New()
	if svc.cfg.timeout != defaultTimeout {
		t.Errorf("timeout = %v, want %v", svc.cfg.timeout, defaultTimeout)
	}
	if svc.cfg.style != defaultStyle {
		t.Errorf("style = %q, want %q", svc.cfg.style, defaultStyle)
	}
	if svc.cfg.theme != defaultTheme {
		t.Errorf("theme = %q, want %q", svc.cfg.theme, defaultTheme)
	}
}

func TestWithTimeout_PanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) did not panic")
		}
	}()
	WithTimeout(0)
}

func TestConvert_EmptyMarkdown(t *testing.T) {
	t.Parallel()

	svc := New()
	_, err := svc.Convert(context.Background(), Input{})
	if !errors.Is(err, ErrEmptyMarkdown) {
		t.Errorf("Convert(empty) error = %v, want ErrEmptyMarkdown", err)
	}
}

func TestConvert_ProducesCompletePage(t *testing.T) {
	t.Parallel()

	svc := New()
	page, err := svc.Convert(context.Background(), Input{
		Markdown: "# Hello\n\nSome *text* here.",
		Title:    "Greeting",
	})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Greeting</title>",
		"<h1>Hello</h1>",
		"<em>text</em>",
		"<style>",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q:\n%s", want, page)
		}
	}
}

func TestConvert_DefaultTitle(t *testing.T) {
	t.Parallel()

	svc := New()
	page, err := svc.Convert(context.Background(), Input{Markdown: "text"})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if !strings.Contains(page, "<title>Document</title>") {
		t.Error("page missing default title")
	}
}

func TestConvert_TitleIsEscaped(t *testing.T) {
	t.Parallel()

	svc := New()
	page, err := svc.Convert(context.Background(), Input{
		Markdown: "text",
		Title:    "<script>alert(1)</script>",
	})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if strings.Contains(page, "<script>") {
		t.Error("title was not escaped")
	}
}

func TestConvert_UserCSSAppendsAfterStyle(t *testing.T) {
	t.Parallel()

	svc := New()
	page, err := svc.Convert(context.Background(), Input{
		Markdown: "text",
		CSS:      ".custom { color: red; }",
	})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	styleIdx := strings.Index(page, "body {")
	customIdx := strings.Index(page, ".custom")
	if styleIdx < 0 || customIdx < 0 {
		t.Fatalf("page missing stylesheet or user CSS:\n%s", page)
	}
	if customIdx < styleIdx {
		t.Error("user CSS should come after the built-in stylesheet")
	}
}

func TestConvert_NoStyle(t *testing.T) {
	t.Parallel()

	svc := New(WithStyle(""))
	page, err := svc.Convert(context.Background(), Input{Markdown: "text"})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if strings.Contains(page, "body {") {
		t.Error("page should not carry a stylesheet when style is empty")
	}
}

func TestConvert_UnknownStyle(t *testing.T) {
	t.Parallel()

	svc := New(WithStyle("no-such-style"))
	_, err := svc.Convert(context.Background(), Input{Markdown: "text"})
	if !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("Convert() error = %v, want ErrStyleNotFound", err)
	}
}

func TestConvert_NormalizesLineEndings(t *testing.T) {
	t.Parallel()

	svc := New()
	page, err := svc.Convert(context.Background(), Input{
		Markdown: "# Title\r\n\r\nBody line.\r\n",
	})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if !strings.Contains(page, "<h1>Title</h1>") {
		t.Errorf("CRLF input not parsed:\n%s", page)
	}
}

func TestConvert_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := New()
	_, err := svc.Convert(ctx, Input{Markdown: "text"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want context.Canceled", err)
	}
}

// slowRenderer blocks until its context is cancelled, standing in for a
// conversion that exceeds the timeout.
type slowRenderer struct{}

func (s *slowRenderer) ToHTML(ctx context.Context, content string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestConvert_Timeout(t *testing.T) {
	t.Parallel()

	svc := New(WithTimeout(10 * time.Millisecond))
	svc.renderer = &slowRenderer{}

	_, err := svc.Convert(context.Background(), Input{Markdown: "text"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Convert() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestConvert_HighlightedCodeBlock(t *testing.T) {
	t.Parallel()

	svc := New()
	page, err := svc.Convert(context.Background(), Input{
		Markdown: "    package main\n\n    func main() {\n    }\n",
	})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if !strings.Contains(page, "<pre") {
		t.Errorf("code block missing from page:\n%s", page)
	}
}
