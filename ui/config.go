package ui

import (
	"strings"
	"time"

	"github.com/casual-erp/casual-web/hooks"
	"github.com/casual-erp/casual-web/watcher"
)

// Default configuration values.
const (
	DefaultPublicDir = "./public"
	DefaultOutputDir = "../public/pdfs"
)

// Config holds UI package configuration.
type Config struct {
	// PublicDir holds static assets served for any unmatched GET.
	// Defaults to "./public".
	PublicDir string

	// OutputDir is where the CLI writes generated PDFs. It is watched while
	// a document is generated and served under PDFPrefix.
	// Defaults to "../public/pdfs".
	OutputDir string

	// PDFPrefix is the URL prefix generated PDFs are served under.
	// Defaults to "/pdfs".
	PDFPrefix string

	// HomeMarkdown is an optional markdown file shown on the home page.
	HomeMarkdown string

	// Retries and Interval bound the wait for a generated PDF.
	// Default to 10 and one second.
	Retries  int
	Interval time.Duration

	// DisableWatcher skips the PDF wait entirely; generation requests
	// answer with a refresh button straight away.
	DisableWatcher bool

	// Hooks receive artifact wait results. May be nil.
	Hooks *hooks.Registry

	// Logger for structured logging.
	// If nil, logging is disabled.
	Logger Logger
}

// Logger interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in default values for zero-valued fields.
func (c *Config) applyDefaults() {
	if c.PublicDir == "" {
		c.PublicDir = DefaultPublicDir
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.PDFPrefix == "" {
		c.PDFPrefix = watcher.DefaultPDFPrefix
	}
	if c.Retries == 0 {
		c.Retries = watcher.DefaultRetries
	}
	if c.Interval == 0 {
		c.Interval = watcher.DefaultInterval
	}
}

// validate checks the configuration for errors.
func (c *Config) validate() error {
	if !strings.HasPrefix(c.PDFPrefix, "/") {
		return ErrInvalidConfig
	}
	if c.Retries < 1 || c.Interval <= 0 {
		return ErrInvalidConfig
	}
	return nil
}
