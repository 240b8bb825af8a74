// Package goquery implements copypasta.HTMLExtractor using CSS selectors.
package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/copypasta"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

var _ copypasta.HTMLExtractor = (*Extractor)(nil)

// DefaultContainers are tried in order; the first match is the content root.
var DefaultContainers = []string{
	"article",
	"div.main-content",
	"body",
}

// DefaultBlocks selects the elements whose text is collected under the
// content root.
const DefaultBlocks = "p, div"

// Extractor pulls the main body text out of an HTML page.
type Extractor struct {
	// Containers overrides DefaultContainers when non-empty.
	Containers []string

	// Blocks overrides DefaultBlocks when non-empty.
	Blocks string
}

// NewExtractor creates an Extractor with the default container order.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the text of every block element under the first matching
// container, one element per line, with whitespace runs collapsed to a single
// space. Nested blocks contribute their text once per enclosing block.
func (e *Extractor) Extract(page []byte, contentType string) (string, error) {
	r, err := charset.NewReader(bytes.NewReader(page), contentType)
	if err != nil {
		return "", copypasta.Errorf(copypasta.EINVALID, "failed to decode HTML: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", copypasta.Errorf(copypasta.EINVALID, "failed to parse HTML: %v", err)
	}

	container := e.container(doc)
	if container == nil {
		return "", copypasta.Errorf(copypasta.ENOCONTENT, copypasta.NoMainBodyText)
	}

	blocks := e.Blocks
	if blocks == "" {
		blocks = DefaultBlocks
	}

	var lines []string
	container.Find(blocks).Each(func(_ int, sel *goquery.Selection) {
		lines = append(lines, nodeText(sel.Get(0)))
	})

	// Fields splits on unicode.IsSpace, which covers NBSP and em spaces.
	return strings.Join(strings.Fields(strings.Join(lines, "\n")), " "), nil
}

// container returns the first selection matching the container order.
// The parser always synthesizes a body element, so a body without any
// visible text counts as missing.
func (e *Extractor) container(doc *goquery.Document) *goquery.Selection {
	containers := e.Containers
	if len(containers) == 0 {
		containers = DefaultContainers
	}
	for _, selector := range containers {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if goquery.NodeName(sel) == "body" && nodeText(sel.Get(0)) == "" {
			continue
		}
		return sel
	}
	return nil
}

// nodeText joins the trimmed, non-empty descendant text nodes of n with
// single spaces. Script and style contents are skipped.
func nodeText(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "noscript", "template":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}
