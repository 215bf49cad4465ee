package source

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Elements that start a new line of text
var blockElements = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Caption: true, atom.Dd: true, atom.Div: true, atom.Dl: true, atom.Dt: true,
	atom.Figcaption: true, atom.Footer: true, atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.H5: true, atom.H6: true, atom.Header: true, atom.Li: true,
	atom.Main: true, atom.Nav: true, atom.Ol: true, atom.P: true, atom.Pre: true,
	atom.Section: true, atom.Table: true, atom.Tbody: true, atom.Thead: true,
	atom.Tfoot: true, atom.Tr: true, atom.Ul: true,
}

// HTML is a calendar published as a web page. Each <hr> starts a new page.
type HTML struct {
	data []byte
}

// NewHTML creates an HTML document from raw bytes
func NewHTML(data []byte) *HTML {
	return &HTML{data: data}
}

// Pages renders the body as line-oriented text
func (h *HTML) Pages() ([]Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(h.data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	doc.Find("script, style, noscript, template").Remove()

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	w := &htmlText{}
	for _, n := range root.Nodes {
		w.walk(n)
	}
	w.breakPage()

	// A closing <hr> leaves an empty page behind
	if n := len(w.pages); n > 1 && w.pages[n-1] == "" {
		w.pages = w.pages[:n-1]
	}

	pages := make([]Page, 0, len(w.pages))
	for i, text := range w.pages {
		pages = append(pages, newPage(i+1, text))
	}
	return pages, nil
}

type htmlText struct {
	cur   strings.Builder
	pages []string
}

func (w *htmlText) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.cur.WriteString(collapseSpace(n.Data))
		return
	case html.CommentNode:
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Hr:
			w.breakPage()
			return
		case atom.Br:
			w.cur.WriteByte('\n')
			return
		}
	}

	block := n.Type == html.ElementNode && blockElements[n.DataAtom]
	if block {
		w.cur.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
	switch {
	case block:
		w.cur.WriteByte('\n')
	case n.DataAtom == atom.Td || n.DataAtom == atom.Th:
		w.cur.WriteByte(' ')
	}
}

// breakPage closes the current page, keeping only non-blank trimmed lines
func (w *htmlText) breakPage() {
	var lines []string
	for _, line := range strings.Split(w.cur.String(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	w.cur.Reset()
	w.pages = append(w.pages, Normalize(strings.Join(lines, "\n")))
}

// collapseSpace turns every whitespace run into one space, keeping a
// leading or trailing space so adjacent inline elements stay separated.
func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s == "" {
			return ""
		}
		return " "
	}

	out := strings.Join(fields, " ")
	if isSpace(s[0]) {
		out = " " + out
	}
	if isSpace(s[len(s)-1]) {
		out += " "
	}
	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
