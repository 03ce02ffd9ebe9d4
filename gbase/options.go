// ABOUTME: Configuration options for the Google Base client
// ABOUTME: Provides functional options pattern for flexible client configuration

package gbase

import (
	"time"

	"gbase-api/core/interfaces"
	"gbase-api/pkg/featureflags"
)

// Converter turns a raw response body into a caller-chosen value
type Converter = func(body []byte) (interface{}, error)

// Option is a functional option for configuring the service
type Option func(*Config) error

// Config holds the configuration for the service
type Config struct {
	// Account
	Email    string
	Password string
	Source   string
	APIKey   string

	// Endpoint
	Server  string
	Scheme  string
	AuthURL string

	// AdditionalHeaders are sent with every request
	AdditionalHeaders map[string]string

	// Dependencies
	HTTPClient interfaces.HTTPClient
	Cache      interfaces.Cache
	Logger     interfaces.Logger
	Flags      featureflags.Manager

	// CacheTTL bounds how long cached GET responses live
	CacheTTL time.Duration
}

func (c Config) dependencies() interfaces.Dependencies {
	return interfaces.Dependencies{
		HTTPClient: c.HTTPClient,
		Cache:      c.Cache,
		Logger:     c.Logger,
		Flags:      c.Flags,
	}
}

// WithCredentials sets the account used by ProgrammaticLogin
func WithCredentials(email, password string) Option {
	return func(c *Config) error {
		c.Email = email
		c.Password = password
		return nil
	}
}

// WithSource sets the application identifier sent to the server
func WithSource(source string) Option {
	return func(c *Config) error {
		c.Source = source
		return nil
	}
}

// WithAPIKey sets the developer key sent as X-Google-Key
func WithAPIKey(key string) Option {
	return func(c *Config) error {
		c.APIKey = key
		return nil
	}
}

// WithServer sets the API host
func WithServer(server string) Option {
	return func(c *Config) error {
		if server == "" {
			return NewError(ErrorTypeConfiguration, "server cannot be empty")
		}
		c.Server = server
		return nil
	}
}

// WithScheme sets the scheme used for relative URIs
func WithScheme(scheme string) Option {
	return func(c *Config) error {
		if scheme != "http" && scheme != "https" {
			return NewError(ErrorTypeConfiguration, "scheme must be 'http' or 'https'")
		}
		c.Scheme = scheme
		return nil
	}
}

// WithAuthURL overrides the ClientLogin endpoint
func WithAuthURL(authURL string) Option {
	return func(c *Config) error {
		c.AuthURL = authURL
		return nil
	}
}

// WithAdditionalHeader adds a header sent with every request
func WithAdditionalHeader(key, value string) Option {
	return func(c *Config) error {
		if c.AdditionalHeaders == nil {
			c.AdditionalHeaders = make(map[string]string)
		}
		c.AdditionalHeaders[key] = value
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithCache sets the response cache; caching also needs the response_cache flag
func WithCache(cache interfaces.Cache, ttl time.Duration) Option {
	return func(c *Config) error {
		c.Cache = cache
		c.CacheTTL = ttl
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithFlags sets the feature flag source
func WithFlags(flags featureflags.Manager) Option {
	return func(c *Config) error {
		c.Flags = flags
		return nil
	}
}

// WithQuietMode configures the service to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// defaultConfig returns the default service configuration
func defaultConfig() Config {
	return Config{
		Server:     DefaultServer,
		Scheme:     "https",
		HTTPClient: DefaultHTTPClient(),
		Logger:     DefaultLogger(),
		Flags:      featureflags.NewEnvManager(""),
		CacheTTL:   5 * time.Minute,
	}
}

func validateConfig(c *Config) error {
	if c.HTTPClient == nil {
		return NewError(ErrorTypeConfiguration, "HTTP client is required")
	}
	if c.Server == "" {
		return NewError(ErrorTypeConfiguration, "server cannot be empty")
	}
	if c.Password != "" && c.Email == "" {
		return NewError(ErrorTypeConfiguration, "password given without email")
	}
	return nil
}
