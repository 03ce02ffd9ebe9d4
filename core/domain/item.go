// ABOUTME: Google Base item model: an Atom entry carrying g: namespace attributes
// ABOUTME: Attributes are read from and written to the entry's extension elements so they round-trip as XML

package domain

import (
	"encoding/xml"
	"strconv"
	"strings"
	"time"

	"gbase-api/core/gdata"
	"gbase-api/pkg/utils/parse"
	timeutil "gbase-api/pkg/utils/time"
)

// Namespaces used by Google Base documents
const (
	GBaseNamespace     = "http://base.google.com/ns/1.0"
	GBaseMetaNamespace = "http://base.google.com/ns-metadata/1.0"
)

// itemTypeTag is the element that names an item's type; it is not an attribute
const itemTypeTag = "item_type"

// ItemAttribute is a single g: element of an item.
// Name uses spaces where the XML tag uses underscores ("target country").
type ItemAttribute struct {
	Name   string
	Type   string
	Value  string
	Access string
}

// IsPrivate reports whether the attribute is hidden from public snippets
func (a ItemAttribute) IsPrivate() bool {
	return a.Access == "private"
}

// Number parses int, float, intUnit and floatUnit values such as "199.99 usd".
// unit is "" for unitless types.
func (a ItemAttribute) Number() (value float64, unit string, ok bool) {
	return parse.NumberUnit(a.Value)
}

// Bool parses boolean values
func (a ItemAttribute) Bool() (bool, bool) {
	b, err := strconv.ParseBool(strings.TrimSpace(a.Value))
	return b, err == nil
}

// Time parses date and dateTime values
func (a ItemAttribute) Time() (time.Time, bool) {
	return timeutil.ParseTimestamp(a.Value)
}

// Item is a Google Base item entry
type Item struct {
	gdata.Entry
}

// NewItem creates an empty item of the given type
func NewItem(title, itemType string) *Item {
	item := &Item{Entry: gdata.Entry{
		XMLName: xml.Name{Space: gdata.AtomNamespace, Local: "entry"},
	}}
	if title != "" {
		item.SetTitle(title)
	}
	if itemType != "" {
		item.SetItemType(itemType)
	}
	return item
}

// ItemFromString decodes a single item entry
func ItemFromString(data []byte) (*Item, error) {
	entry, err := gdata.EntryFromString(data)
	if err != nil {
		return nil, err
	}
	return &Item{Entry: *entry}, nil
}

// ItemType returns the g:item_type value, or "" when unset
func (i *Item) ItemType() string {
	for _, ext := range i.Extensions {
		if isBaseTag(ext, itemTypeTag) {
			return strings.TrimSpace(ext.Value)
		}
	}
	return ""
}

// SetItemType sets g:item_type, replacing any existing value
func (i *Item) SetItemType(itemType string) {
	for idx, ext := range i.Extensions {
		if isBaseTag(ext, itemTypeTag) {
			i.Extensions[idx].Value = itemType
			return
		}
	}
	el := gdata.ExtensionElement{
		XMLName: xml.Name{Space: GBaseNamespace, Local: itemTypeTag},
		Value:   itemType,
	}
	el.SetAttr("type", "text")
	i.AddExtension(el)
}

// ItemAttributes returns every g: attribute except the item type, in document order
func (i *Item) ItemAttributes() []ItemAttribute {
	var out []ItemAttribute
	for _, ext := range i.ExtensionsIn(GBaseNamespace) {
		if ext.XMLName.Local == itemTypeTag {
			continue
		}
		out = append(out, toItemAttribute(ext))
	}
	return out
}

// GetItemAttributes returns the attributes with the given name.
// Multi-valued attributes (labels, image links) yield several results.
func (i *Item) GetItemAttributes(name string) []ItemAttribute {
	tag := attributeTag(name)
	if tag == itemTypeTag {
		return nil
	}
	var out []ItemAttribute
	for _, ext := range i.Extensions {
		if isBaseTag(ext, tag) {
			out = append(out, toItemAttribute(ext))
		}
	}
	return out
}

// AddItemAttribute appends a g: attribute. valueType may be empty.
func (i *Item) AddItemAttribute(name, value, valueType string) ItemAttribute {
	return i.addAttribute(ItemAttribute{Name: name, Value: value, Type: valueType})
}

// AddPrivateItemAttribute appends a g: attribute marked access="private"
func (i *Item) AddPrivateItemAttribute(name, value, valueType string) ItemAttribute {
	return i.addAttribute(ItemAttribute{Name: name, Value: value, Type: valueType, Access: "private"})
}

func (i *Item) addAttribute(attr ItemAttribute) ItemAttribute {
	el := gdata.ExtensionElement{
		XMLName: xml.Name{Space: GBaseNamespace, Local: attributeTag(attr.Name)},
		Value:   attr.Value,
	}
	if attr.Type != "" {
		el.SetAttr("type", attr.Type)
	}
	if attr.Access != "" {
		el.SetAttr("access", attr.Access)
	}
	i.AddExtension(el)
	return toItemAttribute(el)
}

// RemoveItemAttribute removes the first attribute with the given name and
// reports whether one was found.
func (i *Item) RemoveItemAttribute(name string) bool {
	tag := attributeTag(name)
	if tag == itemTypeTag {
		return false
	}
	return i.RemoveExtensions(func(ext gdata.ExtensionElement) bool {
		return isBaseTag(ext, tag)
	}, 1) == 1
}

func toItemAttribute(ext gdata.ExtensionElement) ItemAttribute {
	return ItemAttribute{
		Name:   attributeName(ext.XMLName.Local),
		Type:   ext.Attr("type"),
		Value:  strings.TrimSpace(ext.Value),
		Access: ext.Attr("access"),
	}
}

func isBaseTag(ext gdata.ExtensionElement, tag string) bool {
	return ext.XMLName.Space == GBaseNamespace && ext.XMLName.Local == tag
}

func attributeTag(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}

func attributeName(tag string) string {
	return strings.ReplaceAll(tag, "_", " ")
}

// Snippet is the public, read-only view of an item returned by the snippets feed
type Snippet struct {
	Item
}

// SnippetFromString decodes a single snippet entry
func SnippetFromString(data []byte) (*Snippet, error) {
	item, err := ItemFromString(data)
	if err != nil {
		return nil, err
	}
	return &Snippet{Item: *item}, nil
}
