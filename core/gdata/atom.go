// ABOUTME: Atom entry model shared by every GData service
// ABOUTME: Entries decode with encoding/xml and keep unknown namespaced elements as extensions

package gdata

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	gerrors "gbase-api/core/errors"
	htmlutil "gbase-api/pkg/utils/html"
	timeutil "gbase-api/pkg/utils/time"
)

// Namespaces used by GData documents
const (
	AtomNamespace       = "http://www.w3.org/2005/Atom"
	OpenSearchNamespace = "http://a9.com/-/spec/opensearchrss/1.0/"
	GDataNamespace      = "http://schemas.google.com/g/2005"
)

// Link relations used by GData feeds and entries
const (
	RelSelf      = "self"
	RelEdit      = "edit"
	RelAlternate = "alternate"
	RelNext      = "next"
	RelPrevious  = "previous"
	RelFeed      = "http://schemas.google.com/g/2005#feed"
	RelPost      = "http://schemas.google.com/g/2005#post"
)

// XHTMLNamespace wraps the markup of xhtml text constructs
const XHTMLNamespace = "http://www.w3.org/1999/xhtml"

// Text is an Atom text construct (title, content, summary). For text and
// html constructs Value holds the decoded character data. For xhtml it holds
// the element's inner markup verbatim, including the wrapping div.
type Text struct {
	Type  string
	Value string
}

// UnmarshalXML keeps xhtml markup intact instead of flattening it to text
func (t *Text) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw struct {
		Type  string `xml:"type,attr"`
		Inner string `xml:",innerxml"`
		Chars string `xml:",chardata"`
	}
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}

	t.Type = raw.Type
	if raw.Type == "xhtml" {
		t.Value = strings.TrimSpace(raw.Inner)
	} else {
		t.Value = raw.Chars
	}
	return nil
}

// MarshalXML writes xhtml markup unescaped and everything else as text
func (t Text) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if t.Type != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "type"}, Value: t.Type})
	}
	if t.Type == "xhtml" {
		return e.EncodeElement(struct {
			Inner string `xml:",innerxml"`
		}{t.Value}, start)
	}
	return e.EncodeElement(struct {
		Value string `xml:",chardata"`
	}{t.Value}, start)
}

// wrapXHTML puts bare xhtml markup inside the div Atom requires
func wrapXHTML(markup string) string {
	trimmed := strings.TrimSpace(markup)
	if strings.HasPrefix(trimmed, "<div") {
		return trimmed
	}
	return `<div xmlns="` + XHTMLNamespace + `">` + trimmed + `</div>`
}

// Link is an Atom link
type Link struct {
	Rel   string `xml:"rel,attr,omitempty"`
	Type  string `xml:"type,attr,omitempty"`
	Href  string `xml:"href,attr"`
	Title string `xml:"title,attr,omitempty"`
}

// Category is an Atom category
type Category struct {
	Scheme string `xml:"scheme,attr,omitempty"`
	Term   string `xml:"term,attr"`
	Label  string `xml:"label,attr,omitempty"`
}

// Person is an Atom author or contributor
type Person struct {
	Name  string `xml:"http://www.w3.org/2005/Atom name"`
	Email string `xml:"http://www.w3.org/2005/Atom email,omitempty"`
	URI   string `xml:"http://www.w3.org/2005/Atom uri,omitempty"`
}

// ExtensionElement is any element outside the Atom namespace, kept verbatim
// so that service-specific data survives a decode/encode round trip.
type ExtensionElement struct {
	XMLName  xml.Name
	Attrs    []xml.Attr         `xml:",any,attr"`
	Value    string             `xml:",chardata"`
	Children []ExtensionElement `xml:",any"`
}

// Attr returns the value of the attribute with the given local name
func (e ExtensionElement) Attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// SetAttr sets or replaces an un-namespaced attribute
func (e *ExtensionElement) SetAttr(name, value string) {
	for i, a := range e.Attrs {
		if a.Name.Local == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

// ChildrenNamed returns direct children with the given namespace and local name
func (e ExtensionElement) ChildrenNamed(space, local string) []ExtensionElement {
	var out []ExtensionElement
	for _, c := range e.Children {
		if c.XMLName.Space == space && c.XMLName.Local == local {
			out = append(out, c)
		}
	}
	return out
}

// Entry is a generic Atom entry
type Entry struct {
	XMLName    xml.Name           `xml:"http://www.w3.org/2005/Atom entry"`
	ID         string             `xml:"http://www.w3.org/2005/Atom id,omitempty"`
	Published  string             `xml:"http://www.w3.org/2005/Atom published,omitempty"`
	Updated    string             `xml:"http://www.w3.org/2005/Atom updated,omitempty"`
	Categories []Category         `xml:"http://www.w3.org/2005/Atom category"`
	Title      *Text              `xml:"http://www.w3.org/2005/Atom title,omitempty"`
	Summary    *Text              `xml:"http://www.w3.org/2005/Atom summary,omitempty"`
	Content    *Text              `xml:"http://www.w3.org/2005/Atom content,omitempty"`
	Links      []Link             `xml:"http://www.w3.org/2005/Atom link"`
	Authors    []Person           `xml:"http://www.w3.org/2005/Atom author"`
	Extensions []ExtensionElement `xml:",any"`
}

// EntryFromString decodes a single Atom entry document
func EntryFromString(data []byte) (*Entry, error) {
	var entry Entry
	if err := xml.Unmarshal(data, &entry); err != nil {
		return nil, gerrors.NewError(gerrors.ErrorTypeParsing, "decode atom entry").WithCause(err)
	}
	return &entry, nil
}

// ToString encodes the entry as a standalone XML document
func (e *Entry) ToString() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(e); err != nil {
		return nil, gerrors.NewError(gerrors.ErrorTypeEncoding, "encode atom entry").WithCause(err)
	}
	return buf.Bytes(), nil
}

// TitleText returns the plain title, or "" when absent
func (e *Entry) TitleText() string {
	if e.Title == nil {
		return ""
	}
	if e.Title.Type == "xhtml" {
		return htmlutil.StripHTML(e.Title.Value)
	}
	return e.Title.Value
}

// SetTitle replaces the title with a plain-text construct
func (e *Entry) SetTitle(title string) {
	e.Title = &Text{Type: "text", Value: title}
}

// SetContent replaces the content with a construct of the given type.
// xhtml markup without a wrapping div gets one.
func (e *Entry) SetContent(contentType, value string) {
	if contentType == "xhtml" {
		value = wrapXHTML(value)
	}
	e.Content = &Text{Type: contentType, Value: value}
}

// ContentText returns the content as plain text, stripping markup from
// html and xhtml content
func (e *Entry) ContentText() string {
	if e.Content == nil {
		return ""
	}
	switch e.Content.Type {
	case "html", "xhtml":
		return htmlutil.StripHTML(e.Content.Value)
	default:
		return strings.TrimSpace(e.Content.Value)
	}
}

// UpdatedTime parses the updated timestamp
func (e *Entry) UpdatedTime() (time.Time, bool) {
	return timeutil.ParseTimestamp(e.Updated)
}

// PublishedTime parses the published timestamp
func (e *Entry) PublishedTime() (time.Time, bool) {
	return timeutil.ParseTimestamp(e.Published)
}

// LinkWithRel returns the first link with the given relation
func (e *Entry) LinkWithRel(rel string) *Link {
	return findLink(e.Links, rel)
}

// EditLink returns the edit link, used as the target of updates and deletes
func (e *Entry) EditLink() *Link {
	return e.LinkWithRel(RelEdit)
}

// SelfLink returns the self link
func (e *Entry) SelfLink() *Link {
	return e.LinkWithRel(RelSelf)
}

// AlternateLink returns the alternate (HTML) link
func (e *Entry) AlternateLink() *Link {
	return e.LinkWithRel(RelAlternate)
}

// ExtensionsIn returns extension elements in the given namespace, in document order
func (e *Entry) ExtensionsIn(space string) []ExtensionElement {
	var out []ExtensionElement
	for _, ext := range e.Extensions {
		if ext.XMLName.Space == space {
			out = append(out, ext)
		}
	}
	return out
}

// AddExtension appends an extension element
func (e *Entry) AddExtension(ext ExtensionElement) {
	e.Extensions = append(e.Extensions, ext)
}

// RemoveExtensions drops extension elements for which match returns true
// and reports how many were removed. limit <= 0 removes every match.
func (e *Entry) RemoveExtensions(match func(ExtensionElement) bool, limit int) int {
	kept := e.Extensions[:0]
	removed := 0
	for _, ext := range e.Extensions {
		if match(ext) && (limit <= 0 || removed < limit) {
			removed++
			continue
		}
		kept = append(kept, ext)
	}
	e.Extensions = kept
	return removed
}

func findLink(links []Link, rel string) *Link {
	for i := range links {
		if links[i].Rel == rel {
			return &links[i]
		}
	}
	return nil
}

// rootElement reports the namespace and local name of the document root
func rootElement(data []byte) (xml.Name, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.Name{}, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start.Name, nil
		}
	}
}

// isAtomRoot reports whether data is an Atom document with the given root element
func isAtomRoot(data []byte, local string) bool {
	name, err := rootElement(data)
	if err != nil {
		return false
	}
	return name.Space == AtomNamespace && strings.EqualFold(name.Local, local)
}

// String implements fmt.Stringer for log output
func (e *Entry) String() string {
	return fmt.Sprintf("entry(%s)", e.ID)
}
