package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/todoapp/todo-client/internal/logger"
)

// DefaultAPIURL is the public service the application was built against.
const DefaultAPIURL = "https://jsonplaceholder.typicode.com"

// Config holds the todo CLI configuration.
// Environment variables are automatically parsed from the TODO_ prefix.
type Config struct {
	// APIURL is the base URL of the todos service.
	APIURL string `envconfig:"API_URL" default:"https://jsonplaceholder.typicode.com"`

	// HTTPTimeout bounds a single HTTP exchange.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// Debug dumps HTTP traffic and lowers the log level.
	Debug bool `envconfig:"DEBUG" default:"false"`

	// LogFormat is logger.FormatConsole for humans or logger.FormatJSON for log shippers.
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
}

// New creates a new Config by parsing environment variables
// Example: TODO_API_URL, TODO_HTTP_TIMEOUT
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("TODO", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that APIURL is an absolute http(s) URL, HTTPTimeout is
// positive and LogFormat is known.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("invalid TODO_API_URL %q: %w", c.APIURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid TODO_API_URL %q: must be an absolute http(s) URL", c.APIURL)
	}
	if c.LogFormat != logger.FormatConsole && c.LogFormat != logger.FormatJSON {
		return fmt.Errorf("invalid TODO_LOG_FORMAT %q: want console or json", c.LogFormat)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("invalid TODO_HTTP_TIMEOUT %s: must be > 0", c.HTTPTimeout)
	}
	return nil
}
