// Package core contains the Google Base client logic below the public gbase
// façade. It is free of any particular transport or storage implementation.
//
// The core package is organized into several sub-packages:
//
// - gdata: Generic GData service (auth, headers, CRUD requests, Atom feed/entry model)
// - domain: Google Base entries and feeds (Item, Snippet, AttributeEntry, ItemTypeEntry)
// - errors: Error and RequestError kinds
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// All external dependencies are injected via interfaces.Dependencies, so the
// request and conversion logic is testable with in-memory fakes.
//
// # Usage Example
//
//	import (
//	    "gbase-api/core/domain"
//	    "gbase-api/core/gdata"
//	    "gbase-api/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	svc := gdata.NewService(gdata.Config{
//	    Service: "gbase",
//	    Server:  "base.google.com",
//	}, deps)
//
//	result, err := svc.Get(ctx, "/base/feeds/snippets?bq=digital+camera",
//	    gdata.ConvertWith(domain.SnippetFeedFromString))
package core
