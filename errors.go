package md2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")

	// Asset loading errors.
	ErrStyleNotFound = errors.New("style not found")
)
