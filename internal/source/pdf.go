package source

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDF is a calendar in PDF form. Text is rebuilt row by row from the
// positioned glyph runs of each page.
type PDF struct {
	data []byte
}

// NewPDF creates a PDF document from raw bytes
func NewPDF(data []byte) *PDF {
	return &PDF{data: data}
}

// Pages extracts the text of every page. A page that cannot be decoded is
// returned with ErrNoPageText; only an unreadable document is an error.
func (p *PDF) Pages() ([]Page, error) {
	r, n, err := openPDF(p.data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	pages := make([]Page, 0, n)
	for i := 1; i <= n; i++ {
		text, err := pdfPageText(r, i)
		if err != nil {
			pages = append(pages, Page{Number: i, Err: err})
			continue
		}
		pages = append(pages, newPage(i, text))
	}
	return pages, nil
}

// openPDF guards against the decoder panicking on malformed input
func openPDF(data []byte) (r *pdf.Reader, n int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed PDF: %v", rec)
		}
	}()

	r, err = pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, 0, err
	}
	return r, r.NumPage(), nil
}

func pdfPageText(r *pdf.Reader, num int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrNoPageText, rec)
		}
	}()

	page := r.Page(num)
	if page.V.IsNull() {
		return "", ErrNoPageText
	}

	rows, err := page.GetTextByRow()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoPageText, err)
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(joinRow(row.Content))
		b.WriteByte('\n')
	}
	return Normalize(b.String()), nil
}

// joinRow concatenates the glyph runs of one row left to right, inserting a
// space where the gap between runs is wider than a fraction of the font size.
func joinRow(runs pdf.TextHorizontal) string {
	sorted := make([]pdf.Text, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var b strings.Builder
	prevEnd := 0.0
	for i, run := range sorted {
		if i > 0 && needsSpace(b.String(), run, prevEnd) {
			b.WriteByte(' ')
		}
		b.WriteString(run.S)
		prevEnd = run.X + run.W
	}
	return b.String()
}

func needsSpace(sofar string, next pdf.Text, prevEnd float64) bool {
	if sofar == "" || strings.HasSuffix(sofar, " ") || strings.HasPrefix(next.S, " ") {
		return false
	}
	return next.X-prevEnd > 0.15*next.FontSize
}
