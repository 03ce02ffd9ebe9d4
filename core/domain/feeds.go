// ABOUTME: Typed Google Base feeds built on the generic gdata feed parser
// ABOUTME: Each feed carries the shared OpenSearch paging metadata plus its typed entries

package domain

import "gbase-api/core/gdata"

// ItemFeed is the authenticated user's items feed
type ItemFeed struct {
	gdata.FeedInfo
	Entries []*Item
}

// SnippetFeed is the public snippets feed
type SnippetFeed struct {
	gdata.FeedInfo
	Entries []*Snippet
}

// AttributesFeed lists attribute histograms
type AttributesFeed struct {
	gdata.FeedInfo
	Entries []*AttributeEntry
}

// ItemTypesFeed lists the item types of a locale
type ItemTypesFeed struct {
	gdata.FeedInfo
	Entries []*ItemTypeEntry
}

// LocalesFeed lists supported locales; its entries carry no extra data
type LocalesFeed struct {
	gdata.FeedInfo
	Entries []*gdata.Entry
}

// ItemFeedFromString parses an items feed
func ItemFeedFromString(data []byte) (*ItemFeed, error) {
	info, entries, err := gdata.ConvertFeed(data, func(e *gdata.Entry) *Item {
		return &Item{Entry: *e}
	})
	if err != nil {
		return nil, err
	}
	return &ItemFeed{FeedInfo: info, Entries: entries}, nil
}

// SnippetFeedFromString parses a snippets feed
func SnippetFeedFromString(data []byte) (*SnippetFeed, error) {
	info, entries, err := gdata.ConvertFeed(data, func(e *gdata.Entry) *Snippet {
		return &Snippet{Item: Item{Entry: *e}}
	})
	if err != nil {
		return nil, err
	}
	return &SnippetFeed{FeedInfo: info, Entries: entries}, nil
}

// AttributesFeedFromString parses an attributes feed
func AttributesFeedFromString(data []byte) (*AttributesFeed, error) {
	info, entries, err := gdata.ConvertFeed(data, func(e *gdata.Entry) *AttributeEntry {
		return &AttributeEntry{Entry: *e}
	})
	if err != nil {
		return nil, err
	}
	return &AttributesFeed{FeedInfo: info, Entries: entries}, nil
}

// ItemTypesFeedFromString parses an item types feed
func ItemTypesFeedFromString(data []byte) (*ItemTypesFeed, error) {
	info, entries, err := gdata.ConvertFeed(data, func(e *gdata.Entry) *ItemTypeEntry {
		return &ItemTypeEntry{Entry: *e}
	})
	if err != nil {
		return nil, err
	}
	return &ItemTypesFeed{FeedInfo: info, Entries: entries}, nil
}

// LocalesFeedFromString parses a locales feed
func LocalesFeedFromString(data []byte) (*LocalesFeed, error) {
	info, entries, err := gdata.ConvertFeed(data, func(e *gdata.Entry) *gdata.Entry {
		return e
	})
	if err != nil {
		return nil, err
	}
	return &LocalesFeed{FeedInfo: info, Entries: entries}, nil
}
