package apiclient

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the address of a locally running Mathison server.
	DefaultBaseURL = "http://localhost:3000"

	// DefaultTimeout bounds every request made by a client.
	DefaultTimeout = 30 * time.Second
)

// Config contains the connection settings for a Mathison API client. The
// settings are copied at construction; changing a Config afterwards has no
// effect on clients already built from it.
type Config struct {
	// BaseURL is the root of the Mathison API.
	// Example: "https://mathison.example.com"
	BaseURL string `json:"baseUrl"`

	// APIKey is sent as a bearer token when set. Ignored if TokenSource is set.
	APIKey string `json:"-"`

	// TokenSource supplies the bearer credential. The client asks it for a
	// token on every request and never refreshes anything on its own.
	TokenSource oauth2.TokenSource `json:"-"`

	// Timeout for each request.
	// Default: 30 seconds
	Timeout time.Duration `json:"timeout,omitempty"`

	// TLSVerify controls TLS certificate verification.
	// Set to false only for development with self-signed certs.
	TLSVerify *bool `json:"tlsVerify,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `json:"userAgent,omitempty"`

	// HTTPClient replaces the client built from this config. Its Timeout is
	// left alone and Close does not touch its connection pool.
	HTTPClient *http.Client `json:"-"`

	// Logger receives debug lines for each request (optional).
	Logger hclog.Logger `json:"-"`
}

// DefaultConfig returns a Config pointing at a local server.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		TLSVerify: &tlsVerify,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, validation.By(checkBaseURL)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

func checkBaseURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must use http or https scheme, got: %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("must include a host")
	}
	return nil
}

// applyDefaults fills zero-valued fields.
func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.TLSVerify == nil {
		c.TLSVerify = DefaultConfig().TLSVerify
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
	if c.TokenSource == nil && c.APIKey != "" {
		c.TokenSource = oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: c.APIKey,
			TokenType:   "Bearer",
		})
	}
}

// NewHTTPClient creates the HTTP client described by this config.
func (c *Config) NewHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
