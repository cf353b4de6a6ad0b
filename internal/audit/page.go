package audit

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Page is a read-only handle over a parsed HTML document. The seven
// category analyzers share one Page concurrently and must not mutate it.
type Page struct {
	doc *goquery.Document
	raw string
}

// ParsePage parses raw markup permissively. Malformed input still yields
// a usable (possibly empty) document; analyzers treat missing elements
// as absence, never as an error.
func ParsePage(rawHTML string) *Page {
	// html.Parse cannot fail on an in-memory reader; it repairs
	// whatever markup it is given.
	root, _ := html.Parse(strings.NewReader(rawHTML))
	return &Page{doc: goquery.NewDocumentFromNode(root), raw: rawHTML}
}

// Find runs a CSS selector query against the document.
func (p *Page) Find(selector string) *goquery.Selection {
	return p.doc.Find(selector)
}

// Text returns the visible text content of the document body.
func (p *Page) Text() string {
	body := p.doc.Find("body")
	if body.Length() == 0 {
		return p.doc.Text()
	}
	return body.Text()
}

// Raw returns the unparsed markup.
func (p *Page) Raw() string {
	return p.raw
}
