// ABOUTME: Document source for resume files: text and page-count extraction
// ABOUTME: Distinguishes missing, unreadable, and empty documents
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	// ErrNotFound means the path does not resolve to a file.
	ErrNotFound = errors.New("document not found")
	// ErrUnreadable means the file exists but its format cannot be parsed.
	ErrUnreadable = errors.New("document unreadable")
	// ErrEmptyDocument means extraction succeeded but produced no text.
	ErrEmptyDocument = errors.New("document contains no text")
)

// Extractor turns a document path into normalized text and page count.
// PDF and other binary formats live behind this interface; the shipped
// implementation reads plain-text resumes.
type Extractor interface {
	ExtractText(path string) (string, error)
	PageCount(path string) (int, error)
}

// TextExtractor reads plain-text resume files (.txt, .md, .text).
// Pages are separated by form feeds; a file without form feeds is one
// page.
type TextExtractor struct{}

// NewTextExtractor returns a plain-text document source.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

var textExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".text": true,
}

func (e *TextExtractor) read(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !textExtensions[ext] {
		return "", fmt.Errorf("%w: unsupported extension %q", ErrUnreadable, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrUnreadable, path)
	}
	return string(data), nil
}

// ExtractText returns the trimmed file content.
func (e *TextExtractor) ExtractText(path string) (string, error) {
	text, err := e.read(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// PageCount counts form-feed-separated pages, minimum 1 for non-empty
// files.
func (e *TextExtractor) PageCount(path string) (int, error) {
	text, err := e.read(path)
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	return strings.Count(text, "\f") + 1, nil
}
