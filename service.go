package md2html

import (
	"context"
	"fmt"
	"html"

	"github.com/alnah/go-md2html/internal/assets"
)

// Service orchestrates the markdown-to-HTML pipeline.
type Service struct {
	cfg          serviceConfig
	preprocessor markdownPreprocessor
	renderer     htmlRenderer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithStyle).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout: defaultTimeout,
			style:   defaultStyle,
			theme:   defaultTheme,
		},
		preprocessor: &linePreprocessor{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create renderer if not injected (e.g., by tests)
	if s.renderer == nil {
		s.renderer = newTreeRenderer(s.cfg.theme)
	}

	return s
}

// Convert runs the full pipeline and returns the HTML page as a string.
// The context is used for cancellation; the configured timeout bounds the
// whole conversion.
func (s *Service) Convert(ctx context.Context, input Input) (string, error) {
	if input.Markdown == "" {
		return "", ErrEmptyMarkdown
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	// Preprocess markdown
	mdContent := s.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	// Parse and render the body fragment
	fragment, err := s.renderer.ToHTML(ctx, mdContent)
	if err != nil {
		return "", fmt.Errorf("rendering HTML: %w", err)
	}

	// Resolve the stylesheet and append user CSS
	css, err := s.resolveCSS(input.CSS)
	if err != nil {
		return "", err
	}

	title := input.Title
	if title == "" {
		title = "Document"
	}

	return fmt.Sprintf(htmlTemplate, html.EscapeString(title), css, fragment), nil
}

// resolveCSS combines the configured style sheet with per-conversion CSS.
// An empty style name means no built-in stylesheet.
func (s *Service) resolveCSS(userCSS string) (string, error) {
	css := ""
	if s.cfg.style != "" {
		styleCSS, err := assets.Style(s.cfg.style)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrStyleNotFound, s.cfg.style)
		}
		css = styleCSS
	}
	if userCSS != "" {
		css += userCSS
	}
	return css, nil
}
