// ABOUTME: Google Base service client: typed queries and item insert/update/delete
// ABOUTME: Wraps the generic GData service and adds API key handling and Base-specific converters

package gbase

import (
	"context"
	"strings"

	"gbase-api/core/domain"
	"gbase-api/core/gdata"
)

const (
	// ServiceName is the ClientLogin service identifier for Google Base
	ServiceName = "gbase"

	// DefaultServer is the Google Base API host
	DefaultServer = "base.google.com"

	// APIKeyHeader carries the developer key on every request
	APIKeyHeader = "X-Google-Key"
)

// Feed URIs relative to the server
const (
	ItemsFeedURI      = "/base/feeds/items"
	SnippetsFeedURI   = "/base/feeds/snippets"
	AttributesFeedURI = "/base/feeds/attributes"
	ItemTypesFeedURI  = "/base/feeds/itemtypes"
	LocalesFeedURI    = "/base/feeds/locales/"
)

// Item IDs are absolute URLs on this host; the path after it addresses the item
var itemIDPrefixes = []string{"http://www.google.com/", "https://www.google.com/"}

// Service is a Google Base client. It is safe for concurrent use.
type Service struct {
	gd     *gdata.Service
	config Config
}

// New creates a Google Base service with the given options
func New(options ...Option) (*Service, error) {
	cfg := defaultConfig()

	for _, opt := range options {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	gd := gdata.NewService(gdata.Config{
		Email:             cfg.Email,
		Password:          cfg.Password,
		Source:            cfg.Source,
		Service:           ServiceName,
		Server:            cfg.Server,
		Scheme:            cfg.Scheme,
		AuthURL:           cfg.AuthURL,
		AdditionalHeaders: cfg.AdditionalHeaders,
		CacheTTL:          cfg.CacheTTL,
	}, cfg.dependencies())

	s := &Service{gd: gd, config: cfg}
	if cfg.APIKey != "" {
		s.SetAPIKey(cfg.APIKey)
	}
	return s, nil
}

// GData exposes the underlying generic service for requests not covered here
func (s *Service) GData() *gdata.Service {
	return s.gd
}

// Close releases resources owned by the configured cache, if it has any
func (s *Service) Close() error {
	if closer, ok := s.config.Cache.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// SetAPIKey stores the developer key sent as X-Google-Key. An empty key clears it.
func (s *Service) SetAPIKey(key string) {
	if key == "" {
		s.gd.DeleteAdditionalHeader(APIKeyHeader)
		return
	}
	s.gd.SetAdditionalHeader(APIKeyHeader, key)
}

// APIKey returns the stored developer key and whether one is set
func (s *Service) APIKey() (string, bool) {
	return s.gd.AdditionalHeader(APIKeyHeader)
}

// ProgrammaticLogin authenticates with the configured email and password
func (s *Service) ProgrammaticLogin(ctx context.Context) error {
	return s.gd.ProgrammaticLogin(ctx)
}

// Query performs a GET on uri. With a converter the converter's result is
// returned as is. Otherwise an Atom entry response comes back as a
// *domain.Item and anything else (a *gdata.Feed or raw bytes) unchanged.
func (s *Service) Query(ctx context.Context, uri string, converter Converter) (interface{}, error) {
	result, err := s.gd.Get(ctx, uri, converter)
	if err != nil || converter != nil {
		return result, err
	}
	return asItem(result), nil
}

// QuerySnippetsFeed fetches a public snippets feed
func (s *Service) QuerySnippetsFeed(ctx context.Context, uri string) (*domain.SnippetFeed, error) {
	return get(ctx, s, uri, domain.SnippetFeedFromString)
}

// QueryItemsFeed fetches the authenticated user's items feed
func (s *Service) QueryItemsFeed(ctx context.Context, uri string) (*domain.ItemFeed, error) {
	return get(ctx, s, uri, domain.ItemFeedFromString)
}

// QueryAttributesFeed fetches an attribute histogram feed
func (s *Service) QueryAttributesFeed(ctx context.Context, uri string) (*domain.AttributesFeed, error) {
	return get(ctx, s, uri, domain.AttributesFeedFromString)
}

// QueryItemTypesFeed fetches an item types feed
func (s *Service) QueryItemTypesFeed(ctx context.Context, uri string) (*domain.ItemTypesFeed, error) {
	return get(ctx, s, uri, domain.ItemTypesFeedFromString)
}

// QueryLocalesFeed fetches the locales feed
func (s *Service) QueryLocalesFeed(ctx context.Context, uri string) (*domain.LocalesFeed, error) {
	return get(ctx, s, uri, domain.LocalesFeedFromString)
}

// GetItem fetches a single item
func (s *Service) GetItem(ctx context.Context, uri string) (*domain.Item, error) {
	return get(ctx, s, uri, domain.ItemFromString)
}

// GetSnippet fetches a single snippet
func (s *Service) GetSnippet(ctx context.Context, uri string) (*domain.Snippet, error) {
	return get(ctx, s, uri, domain.SnippetFromString)
}

// GetAttribute fetches a single attribute entry
func (s *Service) GetAttribute(ctx context.Context, uri string) (*domain.AttributeEntry, error) {
	return get(ctx, s, uri, domain.AttributeEntryFromString)
}

// GetItemType fetches a single item type entry
func (s *Service) GetItemType(ctx context.Context, uri string) (*domain.ItemTypeEntry, error) {
	return get(ctx, s, uri, domain.ItemTypeEntryFromString)
}

// GetLocale fetches a single locale entry
func (s *Service) GetLocale(ctx context.Context, uri string) (*gdata.Entry, error) {
	return get(ctx, s, uri, gdata.EntryFromString)
}

// InsertItem posts a new item to the items feed. entry may be a
// *domain.Item, any value with ToString() ([]byte, error), raw XML bytes or
// a string. The result follows the same converter rules as Query.
func (s *Service) InsertItem(ctx context.Context, entry interface{}, params map[string]string, escape bool, converter Converter) (interface{}, error) {
	result, err := s.gd.Post(ctx, entry, ItemsFeedURI, params, escape, converter)
	if err != nil || converter != nil {
		return result, err
	}
	return asItem(result), nil
}

// UpdateItem replaces the item identified by id, which is the item's
// absolute ID or edit URI. The result follows the same converter rules as Query.
func (s *Service) UpdateItem(ctx context.Context, id string, entry interface{}, params map[string]string, escape bool, converter Converter) (interface{}, error) {
	result, err := s.gd.Put(ctx, entry, id, params, escape, converter)
	if err != nil || converter != nil {
		return result, err
	}
	return asItem(result), nil
}

// DeleteItem deletes the item identified by id and reports success.
// The www.google.com host prefix is removed from id and the remaining path
// is sent to the configured server.
func (s *Service) DeleteItem(ctx context.Context, id string, params map[string]string, escape bool) (bool, error) {
	return s.gd.Delete(ctx, ItemPath(id), params, escape)
}

// ItemPath turns an item ID into the server-relative path used for deletion
func ItemPath(id string) string {
	for _, prefix := range itemIDPrefixes {
		if strings.HasPrefix(id, prefix) {
			return "/" + strings.TrimPrefix(id, prefix)
		}
	}
	return "/" + strings.TrimPrefix(id, "/")
}

// asItem converts a generic entry into an item; other results pass through
func asItem(result interface{}) interface{} {
	if entry, ok := result.(*gdata.Entry); ok {
		return &domain.Item{Entry: *entry}
	}
	return result
}

func get[T any](ctx context.Context, s *Service, uri string, parse func([]byte) (T, error)) (T, error) {
	var zero T

	result, err := s.gd.Get(ctx, uri, gdata.ConvertWith(parse))
	if err != nil {
		return zero, err
	}

	typed, ok := result.(T)
	if !ok {
		return zero, NewError(ErrorTypeParsing, "unexpected response type")
	}
	return typed, nil
}
