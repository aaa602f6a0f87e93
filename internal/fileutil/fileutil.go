// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// MaxFileSize caps text file reads to prevent memory exhaustion.
const MaxFileSize = 10 << 20 // 10MB

// ErrFileTooLarge reports a text file over the size cap.
var ErrFileTooLarge = errors.New("file exceeds maximum size")

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// a name. A string containing path separators (/, \) is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// ReadText reads a text file with a size cap.
func ReadText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.Size() > MaxFileSize {
		return "", fmt.Errorf("%w: %s (%d bytes, max %d)", ErrFileTooLarge, path, info.Size(), MaxFileSize)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- caller-provided path
	if err != nil {
		return "", err
	}
	return string(data), nil
}
