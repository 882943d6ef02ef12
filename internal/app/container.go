package app

import (
	"context"
	"fmt"
	"os"

	"github.com/meur/blueprintlabs/internal/catalog"
	"github.com/meur/blueprintlabs/internal/config"
	"github.com/meur/blueprintlabs/internal/preview"
	"github.com/meur/blueprintlabs/internal/storage"
	"go.uber.org/zap"
)

// Container bundles the loaded session and the services built around it.
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	Session  *catalog.Session
	Resolver *preview.Resolver
	Prober   preview.Prober
	Store    *storage.Store // nil unless the sqlite source is configured
}

// Build opens the configured catalog source and loads the session once.
// Load failures degrade to an empty session; only setup errors are returned.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	c := &Container{
		Config:   cfg,
		Logger:   logger,
		Resolver: preview.NewResolver(cfg.Preview.Extensions...),
	}

	var src catalog.Source
	switch cfg.Catalog.Source {
	case config.SourceFile:
		src = catalog.FileSource{
			CatalogPath:   cfg.Catalog.CatalogPath,
			ChangelogPath: cfg.Catalog.ChangelogPath,
		}
	case config.SourceHTTP:
		src = catalog.NewHTTPSource(cfg.Catalog.CatalogURL, cfg.Catalog.ChangelogURL)
	case config.SourceSQLite:
		store, err := storage.New(cfg.Catalog.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open store: %w", err)
		}
		c.Store = store
		src = store
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}

	if cfg.Preview.BaseURL != "" {
		c.Prober = preview.NewHTTPProber(cfg.Preview.BaseURL)
	} else {
		c.Prober = preview.FSProber{FS: os.DirFS(cfg.Server.StaticDir)}
	}

	logger.Info("Loading catalog",
		zap.String("source", cfg.Catalog.Source),
		zap.Strings("image_extensions", c.Resolver.Extensions()),
	)
	c.Session = catalog.OpenSession(ctx, src, logger)

	return c, nil
}

// Close releases the store, if any
func (c *Container) Close() error {
	if c.Store != nil {
		return c.Store.Close()
	}
	return nil
}
