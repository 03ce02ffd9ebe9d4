// ABOUTME: Dependencies container provides dependency injection for the GData layer
// ABOUTME: Defines the contract for dependencies required by the service handles

package interfaces

import "gbase-api/pkg/featureflags"

// Dependencies holds all external dependencies required by the service layer
type Dependencies struct {
	// Cache stores successful GET response bodies; nil disables caching
	Cache Cache

	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Flags toggles optional behaviour; nil means every flag is off
	Flags featureflags.Manager
}
