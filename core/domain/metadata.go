// ABOUTME: Google Base metadata entries: attribute histograms and item type definitions
// ABOUTME: Both are read from gm: namespace elements of an Atom entry

package domain

import (
	"strings"

	"gbase-api/core/gdata"
	"gbase-api/pkg/utils/parse"
)

// AttributeValue is one popular value of an attribute and how often it occurs
type AttributeValue struct {
	Value string
	Count int
}

// Attribute describes a gm:attribute element
type Attribute struct {
	Name   string
	Type   string
	Count  int
	Values []AttributeValue
}

// AttributeEntry is an entry of the attributes feed
type AttributeEntry struct {
	gdata.Entry
}

// AttributeEntryFromString decodes a single attribute entry
func AttributeEntryFromString(data []byte) (*AttributeEntry, error) {
	entry, err := gdata.EntryFromString(data)
	if err != nil {
		return nil, err
	}
	return &AttributeEntry{Entry: *entry}, nil
}

// Attributes returns the gm:attribute elements of the entry
func (e *AttributeEntry) Attributes() []Attribute {
	var out []Attribute
	for _, ext := range e.ExtensionsIn(GBaseMetaNamespace) {
		if ext.XMLName.Local != "attribute" {
			continue
		}
		attr := Attribute{
			Name:  ext.Attr("name"),
			Type:  ext.Attr("type"),
			Count: parse.IntOrZero(ext.Attr("count")),
		}
		for _, v := range ext.ChildrenNamed(GBaseMetaNamespace, "value") {
			attr.Values = append(attr.Values, AttributeValue{
				Value: strings.TrimSpace(v.Value),
				Count: parse.IntOrZero(v.Attr("count")),
			})
		}
		out = append(out, attr)
	}
	return out
}

// ItemTypeAttribute is an attribute recommended for an item type
type ItemTypeAttribute struct {
	Name string
	Type string
}

// ItemTypeEntry is an entry of the item types feed
type ItemTypeEntry struct {
	gdata.Entry
}

// ItemTypeEntryFromString decodes a single item type entry
func ItemTypeEntryFromString(data []byte) (*ItemTypeEntry, error) {
	entry, err := gdata.EntryFromString(data)
	if err != nil {
		return nil, err
	}
	return &ItemTypeEntry{Entry: *entry}, nil
}

// ItemType returns the gm:item_type value
func (e *ItemTypeEntry) ItemType() string {
	for _, ext := range e.ExtensionsIn(GBaseMetaNamespace) {
		if ext.XMLName.Local == "item_type" {
			return strings.TrimSpace(ext.Value)
		}
	}
	return ""
}

// Attributes returns the attributes listed under gm:attributes
func (e *ItemTypeEntry) Attributes() []ItemTypeAttribute {
	var out []ItemTypeAttribute
	for _, ext := range e.ExtensionsIn(GBaseMetaNamespace) {
		if ext.XMLName.Local != "attributes" {
			continue
		}
		for _, a := range ext.ChildrenNamed(GBaseMetaNamespace, "attribute") {
			out = append(out, ItemTypeAttribute{Name: a.Attr("name"), Type: a.Attr("type")})
		}
	}
	return out
}
