package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/smartfarming/pulsemart/internal/catalog"
	"github.com/smartfarming/pulsemart/internal/config"
	"github.com/smartfarming/pulsemart/internal/logging"
	"github.com/smartfarming/pulsemart/internal/storefront"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `pulsemart init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the command logger on stderr.
func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	return logging.New(cfg.Log, os.Stderr, verbose)
}

// loadCatalog returns the configured catalog override, or the built-in one.
func loadCatalog(cfg *config.Config) (catalog.Catalog, error) {
	if cfg.CatalogFile == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.CatalogFile)
}

// newRenderer builds the page renderer from the storefront settings.
func newRenderer(cfg *config.Config) (*storefront.Renderer, error) {
	return storefront.NewRenderer(storefront.Site{
		Title:   cfg.Storefront.Title,
		Heading: cfg.Storefront.Heading,
		Intro:   cfg.Storefront.Intro,
		Owner:   cfg.Storefront.Owner,
	})
}
