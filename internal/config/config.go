package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"

	"github.com/mathison-ai/mathison-go/pkg/apiclient"
)

// Environment variables read by Load.
const (
	EnvAddress  = "MATHISON_ADDRESS"
	EnvAPIKey   = "MATHISON_API_KEY"
	EnvTimeout  = "MATHISON_TIMEOUT"
	EnvLogLevel = "MATHISON_LOG_LEVEL"
)

// DefaultLogLevel is used when no level is configured.
const DefaultLogLevel = "warn"

var logLevels = []any{"trace", "debug", "info", "warn", "error", "off"}

// File is the on-disk HCL configuration.
type File struct {
	// Address is the base URL of the Mathison server.
	Address string `hcl:"address,optional"`

	// APIKey is sent as a bearer token.
	APIKey string `hcl:"api_key,optional"`

	// Timeout is a duration string such as "30s".
	Timeout string `hcl:"timeout,optional"`

	// TLSVerify disables certificate verification when false.
	TLSVerify *bool `hcl:"tls_verify,optional"`

	// LogLevel is the CLI log level.
	LogLevel string `hcl:"log_level,optional"`
}

// Validate checks the values that can be checked without a network call.
func (f File) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Timeout, validation.By(checkDuration)),
		validation.Field(&f.LogLevel, validation.In(logLevels...)),
	)
}

// Config is the resolved CLI configuration.
type Config struct {
	Address   string
	APIKey    string
	Timeout   time.Duration
	TLSVerify bool
	LogLevel  string

	// Path is the file the configuration was read from, if any.
	Path string
}

// Overrides are values given on the command line. Zero values are unset.
type Overrides struct {
	Address  string
	APIKey   string
	Timeout  time.Duration
	LogLevel string
}

// Loader resolves configuration from a file, the environment and overrides.
type Loader struct {
	// FS is the filesystem the config file is read from.
	FS afero.Fs

	// LookupEnv reads environment variables. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)

	// DefaultPath is used when no explicit path is given.
	DefaultPath string
}

// NewLoader returns a Loader reading from the OS filesystem and environment.
func NewLoader() *Loader {
	return &Loader{
		FS:          afero.NewOsFs(),
		LookupEnv:   os.LookupEnv,
		DefaultPath: DefaultPath(),
	}
}

// DefaultPath returns $HOME/.mathison/config.hcl, or "" when the home
// directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mathison", "config.hcl")
}

// Load resolves the configuration. Precedence is overrides, then environment,
// then file, then defaults. A missing file at path is an error; a missing
// file at the default path is not.
func (l *Loader) Load(path string, overrides Overrides) (*Config, error) {
	cfg := &Config{
		Address:   apiclient.DefaultBaseURL,
		Timeout:   apiclient.DefaultTimeout,
		TLSVerify: true,
		LogLevel:  DefaultLogLevel,
	}

	explicit := path != ""
	if !explicit {
		path = l.DefaultPath
	}

	if path != "" {
		file, err := l.readFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist) && !explicit:
			// No config file; defaults apply.
		case err != nil:
			return nil, err
		default:
			if err := cfg.applyFile(file); err != nil {
				return nil, fmt.Errorf("invalid config file %s: %w", path, err)
			}
			cfg.Path = path
		}
	}

	if err := cfg.applyEnv(l.lookupEnv); err != nil {
		return nil, err
	}
	cfg.applyOverrides(overrides)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (l *Loader) lookupEnv(key string) (string, bool) {
	if l.LookupEnv == nil {
		return os.LookupEnv(key)
	}
	return l.LookupEnv(key)
}

func (l *Loader) readFile(path string) (*File, error) {
	fs := l.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}

	src, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	var file File
	if err := hclsimple.Decode(path, src, nil, &file); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &file, nil
}

func (c *Config) applyFile(f *File) error {
	if f.Address != "" {
		c.Address = f.Address
	}
	if f.APIKey != "" {
		c.APIKey = f.APIKey
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return err
		}
		c.Timeout = d
	}
	if f.TLSVerify != nil {
		c.TLSVerify = *f.TLSVerify
	}
	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if val, ok := lookup(EnvAddress); ok && val != "" {
		c.Address = val
	}
	if val, ok := lookup(EnvAPIKey); ok && val != "" {
		c.APIKey = val
	}
	if val, ok := lookup(EnvTimeout); ok && val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	if val, ok := lookup(EnvLogLevel); ok && val != "" {
		c.LogLevel = val
	}
	return nil
}

func (c *Config) applyOverrides(o Overrides) {
	if o.Address != "" {
		c.Address = o.Address
	}
	if o.APIKey != "" {
		c.APIKey = o.APIKey
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

// Validate checks the resolved configuration.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Address, validation.Required),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
		validation.Field(&c.LogLevel, validation.In(logLevels...)),
	)
}

// Level returns LogLevel as an hclog level.
func (c *Config) Level() hclog.Level {
	return hclog.LevelFromString(strings.ToLower(c.LogLevel))
}

// ClientConfig returns the SDK configuration for these settings.
func (c *Config) ClientConfig(logger hclog.Logger) *apiclient.Config {
	tlsVerify := c.TLSVerify
	return &apiclient.Config{
		BaseURL:   c.Address,
		APIKey:    c.APIKey,
		Timeout:   c.Timeout,
		TLSVerify: &tlsVerify,
		Logger:    logger,
	}
}

// APIKeyExpiry returns the expiry of an API key that is a JWT. The signature
// is not checked. ok is false when the key is not a JWT or has no exp claim.
func APIKeyExpiry(key string) (exp time.Time, ok bool) {
	if strings.Count(key, ".") != 2 {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(key, claims); err != nil {
		return time.Time{}, false
	}

	date, err := claims.GetExpirationTime()
	if err != nil || date == nil {
		return time.Time{}, false
	}
	return date.Time, true
}

// APIKeyExpired reports whether the API key is a JWT whose exp has passed.
func (c *Config) APIKeyExpired(now time.Time) bool {
	exp, ok := APIKeyExpiry(c.APIKey)
	return ok && now.After(exp)
}

func checkDuration(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return errors.New("must be a duration such as 30s")
	}
	if d < 0 {
		return errors.New("must not be negative")
	}
	return nil
}
