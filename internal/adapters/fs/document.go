package fs

import (
	"io"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// BodyText parses r as an HTML document and returns the text content of its
// <body> element with all tags stripped. Comments are ignored.
func BodyText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", zerr.Wrap(err, "failed to parse document")
	}

	body := findElement(doc, atom.Body)
	if body == nil {
		// The parser always synthesizes a body for HTML input, so this is a
		// document without one (e.g. a frameset).
		return "", nil
	}

	var sb strings.Builder
	collectText(body, &sb)
	return sb.String(), nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
