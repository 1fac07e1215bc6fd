package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/marquee/internal/catalog"
	"github.com/MrSnakeDoc/marquee/internal/logger"
	"github.com/MrSnakeDoc/marquee/internal/sources/seed"
)

// CatalogReloader handles periodic reloading of the festival catalog
type CatalogReloader struct {
	loader        *seed.Loader
	mapper        *seed.Mapper
	catalog       *catalog.Catalog
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewCatalogReloader creates a new catalog reloader
func NewCatalogReloader(
	catalogFile string,
	cat *catalog.Catalog,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *CatalogReloader {
	return &CatalogReloader{
		loader:        seed.NewLoader(catalogFile),
		mapper:        seed.NewMapper(),
		catalog:       cat,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start begins the periodic reload process
func (cr *CatalogReloader) Start(ctx context.Context) error {
	// Load immediately on start
	if err := cr.Reload(ctx); err != nil {
		return fmt.Errorf("initial reload failed: %w", err)
	}

	// Start periodic reload
	ticker := time.NewTicker(cr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload catalog",
						logger.Error(err))
				}
			case <-cr.manualTrigger:
				cr.logger.Info("manual reload triggered")
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload catalog",
						logger.Error(err))
				}
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (cr *CatalogReloader) Stop() {
	close(cr.stopCh)
}

// Reload loads the catalog source and swaps it into the in-memory catalog
func (cr *CatalogReloader) Reload(_ context.Context) error {
	cr.logger.Info("reloading catalog",
		logger.String("source", cr.source()))

	doc, err := cr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	events, artists, venues, err := cr.mapper.Map(doc)
	if err != nil {
		return fmt.Errorf("failed to map catalog: %w", err)
	}

	cr.catalog.Replace(events, artists, venues)

	cr.logger.Info("catalog reloaded",
		logger.Int("events", len(events)),
		logger.Int("artists", len(artists)),
		logger.Int("venues", len(venues)))

	return nil
}

func (cr *CatalogReloader) source() string {
	if cr.loader.Embedded() {
		return "embedded"
	}
	return "file"
}
