package source

import (
	"strings"
)

// Text is a plain-text rendering of a calendar. Form feeds separate pages,
// as written by pdftotext.
type Text struct {
	data []byte
}

// NewText creates a Text document from raw bytes
func NewText(data []byte) *Text {
	return &Text{data: data}
}

// Pages splits the text on form feeds. Bytes that are not valid UTF-8 are
// dropped.
func (t *Text) Pages() ([]Page, error) {
	text := strings.ToValidUTF8(string(t.data), "")
	segments := strings.Split(Normalize(text), "\f")

	// A trailing form feed ends the last page rather than starting a new one
	if len(segments) > 1 && strings.TrimSpace(segments[len(segments)-1]) == "" {
		segments = segments[:len(segments)-1]
	}

	pages := make([]Page, 0, len(segments))
	for i, seg := range segments {
		pages = append(pages, newPage(i+1, seg))
	}
	return pages, nil
}
