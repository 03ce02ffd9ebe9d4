// ABOUTME: HTML utilities for turning html-typed Atom content into plain text
// ABOUTME: Parses with x/net/html and walks the tree with goquery, dropping script and style bodies

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// StripHTML removes tags, decodes entities and collapses whitespace.
// Input that cannot be parsed is returned with whitespace collapsed.
func StripHTML(s string) string {
	node, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return collapse(s)
	}

	doc := goquery.NewDocumentFromNode(node)
	doc.Find("script, style").Remove()
	return collapse(doc.Text())
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
