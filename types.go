package md2html

import "time"

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)
	Title    string // Page title (optional, default "Document")
	CSS      string // Custom CSS appended after the style sheet (optional)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
	style   string
	theme   string
}

// Defaults applied by New.
const (
	defaultTimeout = 30 * time.Second
	defaultStyle   = "default"
	defaultTheme   = "github"
)

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2html: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithStyle selects a built-in stylesheet by name. An empty name produces
// pages without a stylesheet. Unknown names surface as ErrStyleNotFound
// from Convert.
func WithStyle(name string) Option {
	return func(s *Service) {
		s.cfg.style = name
	}
}

// WithHighlightTheme selects the chroma theme used for code blocks.
// An empty theme disables syntax highlighting.
func WithHighlightTheme(theme string) Option {
	return func(s *Service) {
		s.cfg.theme = theme
	}
}
