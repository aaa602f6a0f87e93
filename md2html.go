package md2html

import (
	"context"

	"github.com/alnah/go-md2html/internal/render"
	"github.com/alnah/go-md2html/markdown"
)

// htmlTemplate wraps the rendered fragment in a complete HTML5 document.
// The verbs are title, stylesheet content, and body fragment.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
%s</style>
</head>
<body>
%s</body>
</html>
`

// htmlRenderer abstracts Markdown to HTML fragment conversion.
type htmlRenderer interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// treeRenderer parses markdown into a document tree and renders it as HTML.
type treeRenderer struct {
	renderer *render.Renderer
}

func newTreeRenderer(theme string) *treeRenderer {
	return &treeRenderer{renderer: render.New(theme)}
}

// ToHTML converts Markdown content to an HTML body fragment.
// Supports context cancellation via goroutine + select pattern since
// parsing and rendering are not context aware.
func (c *treeRenderer) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	done := make(chan string, 1)

	go func() {
		doc := markdown.Parse(content)
		done <- c.renderer.Render(doc)
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case fragment := <-done:
		return fragment, nil
	}
}
