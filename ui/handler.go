package ui

import (
	"fmt"
	"net/http"

	"github.com/casual-erp/casual-web/ui/frontend"
	"github.com/casual-erp/casual-web/ui/service"
	"github.com/casual-erp/casual-web/watcher"
)

// NewHandler returns the http.Handler serving the ERP frontend. Every page
// is built from cli calls.
//
// Usage:
//
//	inv, _ := ccli.New(&ccli.Config{Production: true})
//	h, err := ui.NewHandler(inv, &ui.Config{OutputDir: "/srv/pdfs"})
//	http.ListenAndServe(":3000", h)
func NewHandler(cli service.CLI, cfg *Config) (http.Handler, error) {
	if cli == nil {
		return nil, ErrCLIRequired
	}
	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		cfg.applyDefaults()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var w *watcher.Watcher
	if !cfg.DisableWatcher {
		var err error
		w, err = watcher.New(&watcher.Config{
			Dir:       cfg.OutputDir,
			Retries:   cfg.Retries,
			Interval:  cfg.Interval,
			PDFPrefix: cfg.PDFPrefix,
			Logger:    cfg.Logger,
		})
		if err != nil {
			return nil, fmt.Errorf("ui: output watcher: %w", err)
		}
	}

	return frontend.NewRouter(service.New(cli), w, &frontend.Config{
		PublicDir:    cfg.PublicDir,
		OutputDir:    cfg.OutputDir,
		PDFPrefix:    cfg.PDFPrefix,
		HomeMarkdown: cfg.HomeMarkdown,
		Hooks:        cfg.Hooks,
		Logger:       cfg.Logger,
	}), nil
}

// UIHandler is NewHandler for callers that treat a bad configuration as a
// programmer error. It panics instead of returning the error.
func UIHandler(cli service.CLI, cfg *Config) http.Handler {
	h, err := NewHandler(cli, cfg)
	if err != nil {
		panic("ui: invalid configuration: " + err.Error())
	}
	return h
}
