// ABOUTME: Generic GData feed model parsed with gofeed's Atom parser
// ABOUTME: Maps gofeed extensions back into namespaced ExtensionElements so typed feeds can read them

package gdata

import (
	"bytes"
	"encoding/xml"
	"sort"
	"strings"
	"time"

	gerrors "gbase-api/core/errors"
	"gbase-api/pkg/utils/parse"
	"github.com/mmcdole/gofeed/atom"
	ext "github.com/mmcdole/gofeed/extensions"
)

// FeedInfo carries the feed-level metadata shared by every typed feed
type FeedInfo struct {
	ID            string
	Title         string
	Subtitle      string
	Updated       string
	UpdatedParsed *time.Time
	Links         []Link
	Authors       []Person
	Categories    []Category

	// OpenSearch paging counters; zero when the server omitted them
	TotalResults int
	StartIndex   int
	ItemsPerPage int
}

// LinkWithRel returns the first feed link with the given relation
func (f *FeedInfo) LinkWithRel(rel string) *Link {
	return findLink(f.Links, rel)
}

// NextLink returns the link to the next page of results, if any
func (f *FeedInfo) NextLink() *Link {
	return f.LinkWithRel(RelNext)
}

// PostLink returns the URI new entries are posted to, if advertised
func (f *FeedInfo) PostLink() *Link {
	return f.LinkWithRel(RelPost)
}

// Feed is a generic GData feed
type Feed struct {
	FeedInfo
	Entries []*Entry
}

// FeedFromString parses an Atom feed document
func FeedFromString(data []byte) (*Feed, error) {
	info, entries, err := parseFeed(data)
	if err != nil {
		return nil, err
	}
	return &Feed{FeedInfo: info, Entries: entries}, nil
}

// ConvertFeed parses an Atom feed and wraps every entry with wrap.
// Typed feeds in service packages are built on top of it.
func ConvertFeed[T any](data []byte, wrap func(*Entry) T) (FeedInfo, []T, error) {
	info, entries, err := parseFeed(data)
	if err != nil {
		return FeedInfo{}, nil, err
	}
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		out = append(out, wrap(e))
	}
	return info, out, nil
}

func parseFeed(data []byte) (FeedInfo, []*Entry, error) {
	if !isAtomRoot(data, "feed") {
		return FeedInfo{}, nil, gerrors.NewError(gerrors.ErrorTypeParsing, "document is not an atom feed")
	}

	parser := &atom.Parser{}
	parsed, err := parser.Parse(bytes.NewReader(data))
	if err != nil {
		return FeedInfo{}, nil, gerrors.NewError(gerrors.ErrorTypeParsing, "decode atom feed").WithCause(err)
	}

	rootSpaces, entrySpaces := declaredNamespaces(data)

	info := FeedInfo{
		ID:            parsed.ID,
		Title:         parsed.Title,
		Subtitle:      parsed.Subtitle,
		Updated:       parsed.Updated,
		UpdatedParsed: parsed.UpdatedParsed,
		Links:         convertLinks(parsed.Links),
		Authors:       convertPeople(parsed.Authors),
		Categories:    convertCategories(parsed.Categories),
	}
	info.TotalResults = openSearchInt(parsed.Extensions, "totalResults")
	info.StartIndex = openSearchInt(parsed.Extensions, "startIndex")
	info.ItemsPerPage = openSearchInt(parsed.Extensions, "itemsPerPage")

	entries := make([]*Entry, 0, len(parsed.Entries))
	for i, e := range parsed.Entries {
		spaces := rootSpaces
		if len(entrySpaces) == len(parsed.Entries) {
			spaces = entrySpaces[i]
		}
		entries = append(entries, convertEntry(e, spaces))
	}

	return info, entries, nil
}

func convertEntry(e *atom.Entry, spaces map[string]string) *Entry {
	entry := &Entry{
		XMLName:    xml.Name{Space: AtomNamespace, Local: "entry"},
		ID:         e.ID,
		Published:  e.Published,
		Updated:    e.Updated,
		Links:      convertLinks(e.Links),
		Authors:    convertPeople(e.Authors),
		Categories: convertCategories(e.Categories),
		Extensions: convertExtensions(e.Extensions, spaces),
	}
	if e.Title != "" {
		entry.Title = &Text{Type: "text", Value: e.Title}
	}
	if e.Summary != "" {
		entry.Summary = &Text{Type: "text", Value: e.Summary}
	}
	if e.Content != nil {
		value := e.Content.Value
		// gofeed strips the wrapping div from xhtml content
		if e.Content.Type == "xhtml" {
			value = wrapXHTML(value)
		}
		entry.Content = &Text{Type: e.Content.Type, Value: value}
	}
	return entry
}

func convertLinks(links []*atom.Link) []Link {
	out := make([]Link, 0, len(links))
	for _, l := range links {
		if l == nil {
			continue
		}
		out = append(out, Link{Rel: l.Rel, Type: l.Type, Href: l.Href, Title: l.Title})
	}
	return out
}

func convertPeople(people []*atom.Person) []Person {
	out := make([]Person, 0, len(people))
	for _, p := range people {
		if p == nil {
			continue
		}
		out = append(out, Person{Name: p.Name, Email: p.Email, URI: p.URI})
	}
	return out
}

func convertCategories(categories []*atom.Category) []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		if c == nil {
			continue
		}
		out = append(out, Category{Scheme: c.Scheme, Term: c.Term, Label: c.Label})
	}
	return out
}

// convertExtensions flattens gofeed's prefix/name map into ExtensionElements.
// gofeed keys extensions by prefix, so prefixes are resolved back to
// namespace URIs using the declarations in scope for the entry. Element order
// within one name is preserved; names are emitted in sorted order.
func convertExtensions(exts ext.Extensions, spaces map[string]string) []ExtensionElement {
	var out []ExtensionElement

	prefixes := make([]string, 0, len(exts))
	for prefix := range exts {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	for _, prefix := range prefixes {
		space := resolvePrefix(prefix, spaces)
		byName := exts[prefix]

		names := make([]string, 0, len(byName))
		for name := range byName {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			for _, e := range byName[name] {
				out = append(out, convertExtension(e, space))
			}
		}
	}
	return out
}

func convertExtension(e ext.Extension, space string) ExtensionElement {
	el := ExtensionElement{
		XMLName: xml.Name{Space: space, Local: e.Name},
		Value:   e.Value,
	}

	attrNames := make([]string, 0, len(e.Attrs))
	for name := range e.Attrs {
		attrNames = append(attrNames, name)
	}
	sort.Strings(attrNames)
	for _, name := range attrNames {
		el.Attrs = append(el.Attrs, xml.Attr{Name: xml.Name{Local: name}, Value: e.Attrs[name]})
	}

	childNames := make([]string, 0, len(e.Children))
	for name := range e.Children {
		childNames = append(childNames, name)
	}
	sort.Strings(childNames)
	for _, name := range childNames {
		for _, child := range e.Children[name] {
			el.Children = append(el.Children, convertExtension(child, space))
		}
	}
	return el
}

// declaredNamespaces returns the prefix -> URI declarations on the root
// element and, for each top-level entry in document order, the declarations
// in scope anywhere inside that entry. Prefixes are lower-cased.
func declaredNamespaces(data []byte) (map[string]string, []map[string]string) {
	root := map[string]string{
		"opensearch": OpenSearchNamespace,
		"gd":         GDataNamespace,
	}
	var entries []map[string]string
	var current map[string]string

	dec := xml.NewDecoder(bytes.NewReader(data))
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return root, entries
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch {
			case depth == 1:
				addDeclarations(root, t.Attr, true)
			case depth == 2 && t.Name.Space == AtomNamespace && strings.EqualFold(t.Name.Local, "entry"):
				current = make(map[string]string, len(root))
				for k, v := range root {
					current[k] = v
				}
				addDeclarations(current, t.Attr, true)
			case current != nil:
				addDeclarations(current, t.Attr, false)
			}
		case xml.EndElement:
			if depth == 2 && current != nil {
				entries = append(entries, current)
				current = nil
			}
			depth--
		}
	}
}

// addDeclarations records xmlns:prefix attributes. Nested declarations do
// not replace a prefix already bound by an enclosing element.
func addDeclarations(spaces map[string]string, attrs []xml.Attr, override bool) {
	for _, attr := range attrs {
		if attr.Name.Space != "xmlns" {
			continue
		}
		prefix := strings.ToLower(attr.Name.Local)
		if _, bound := spaces[prefix]; bound && !override {
			continue
		}
		spaces[prefix] = attr.Value
	}
}

func resolvePrefix(prefix string, spaces map[string]string) string {
	if uri, ok := spaces[strings.ToLower(prefix)]; ok {
		return uri
	}
	// gofeed falls back to the namespace URI itself for undeclared prefixes
	return prefix
}

func openSearchInt(exts ext.Extensions, name string) int {
	for prefix, byName := range exts {
		if !strings.EqualFold(prefix, "opensearch") {
			continue
		}
		for elName, values := range byName {
			if strings.EqualFold(elName, name) && len(values) > 0 {
				return parse.IntOrZero(values[0].Value)
			}
		}
	}
	return 0
}
