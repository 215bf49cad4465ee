// Package source turns calendar documents into ordered page text.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrSourceUnavailable means the document could not be read or opened at all
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrNoPageText marks a page that yielded no text
	ErrNoPageText = errors.New("page has no extractable text")
)

// Page is the text of one page. Err is set instead of Text when the page
// has no extractable text.
type Page struct {
	Number int // 1-based, document order
	Text   string
	Err    error
}

// Document yields the pages of a calendar document in order
type Document interface {
	Pages() ([]Page, error)
}

// Load reads the file at path and returns a Document for its format,
// chosen by file extension.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	return forExtension(data, filepath.Ext(path))
}

func forExtension(data []byte, ext string) (Document, error) {
	ext = strings.ToLower(ext)
	switch ext {
	case ".pdf":
		return NewPDF(data), nil
	case ".txt", ".text":
		return NewText(data), nil
	case ".html", ".htm":
		return NewHTML(data), nil
	default:
		return nil, fmt.Errorf("%w: unsupported file type %q", ErrSourceUnavailable, ext)
	}
}

// newPage builds a Page, marking blank text as unavailable
func newPage(number int, text string) Page {
	if strings.TrimSpace(text) == "" {
		return Page{Number: number, Err: ErrNoPageText}
	}
	return Page{Number: number, Text: text}
}
