package scheduler

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/marquee/internal/catalog"
	"github.com/MrSnakeDoc/marquee/internal/domain"
	"github.com/MrSnakeDoc/marquee/internal/logger"
	redisstore "github.com/MrSnakeDoc/marquee/internal/store/redis"
)

// OrphanCollector prunes user ledgers of entries whose catalog item no
// longer exists. Saved items and notification flags reference catalog ids,
// and a catalog reload may drop an id they point at.
type OrphanCollector struct {
	store    *redisstore.Store
	catalog  *catalog.Catalog
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
}

// NewOrphanCollector creates a new orphan collector
func NewOrphanCollector(
	store *redisstore.Store,
	cat *catalog.Catalog,
	log logger.Logger,
	interval time.Duration,
) *OrphanCollector {
	return &OrphanCollector{
		store:    store,
		catalog:  cat,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic collection process
func (oc *OrphanCollector) Start(ctx context.Context) error {
	// Run immediately on start
	if err := oc.Collect(ctx); err != nil {
		oc.logger.Warn("initial orphan collection failed",
			logger.Error(err))
	}

	// Start periodic collection
	ticker := time.NewTicker(oc.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := oc.Collect(ctx); err != nil {
					oc.logger.Error("orphan collection failed",
						logger.Error(err))
				}
			case <-oc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the collector
func (oc *OrphanCollector) Stop() {
	close(oc.stopCh)
}

// Collect scans every user ledger and removes entries that no longer
// resolve against the catalog
func (oc *OrphanCollector) Collect(ctx context.Context) error {
	oc.logger.Info("running orphan collection for user ledgers")

	savedPruned := oc.collectSaved(ctx)
	notifyPruned := oc.collectNotifications(ctx)

	total := savedPruned + notifyPruned
	if total > 0 {
		oc.logger.Info("orphan collection completed",
			logger.Int("saved_pruned", savedPruned),
			logger.Int("notifications_pruned", notifyPruned),
			logger.Int("total_pruned", total))
	} else {
		oc.logger.Debug("no orphaned ledger entries")
	}

	return nil
}

// collectSaved prunes saved-item ledgers
func (oc *OrphanCollector) collectSaved(ctx context.Context) int {
	users, err := oc.store.Users(ctx, redisstore.KeyPrefixSaved)
	if err != nil {
		oc.logger.Warn("failed to list saved-item ledgers",
			logger.Error(err))
		return 0
	}

	pruned := 0
	for _, user := range users {
		items, err := oc.store.GetSavedItems(ctx, user)
		if err != nil {
			oc.logger.Warn("failed to read saved items",
				logger.String("user", user),
				logger.Error(err))
			continue
		}

		kept, dropped := pruneSavedItems(items, oc.catalog.Contains)
		if dropped == 0 {
			continue
		}

		if err := oc.store.SetSavedItems(ctx, user, kept); err != nil {
			oc.logger.Warn("failed to save pruned items",
				logger.String("user", user),
				logger.Error(err))
			continue
		}

		oc.logger.Info("pruned orphaned saved items",
			logger.String("user", user),
			logger.Int("dropped", dropped))
		pruned += dropped
	}

	return pruned
}

// collectNotifications prunes notification lists
func (oc *OrphanCollector) collectNotifications(ctx context.Context) int {
	users, err := oc.store.Users(ctx, redisstore.KeyPrefixNotify)
	if err != nil {
		oc.logger.Warn("failed to list notification lists",
			logger.Error(err))
		return 0
	}

	pruned := 0
	for _, user := range users {
		ids, err := oc.store.GetNotifications(ctx, user)
		if err != nil {
			oc.logger.Warn("failed to read notifications",
				logger.String("user", user),
				logger.Error(err))
			continue
		}

		kept, dropped := pruneEventIDs(ids, oc.catalog.Contains)
		if dropped == 0 {
			continue
		}

		if err := oc.store.SetNotifications(ctx, user, kept); err != nil {
			oc.logger.Warn("failed to save pruned notifications",
				logger.String("user", user),
				logger.Error(err))
			continue
		}

		oc.logger.Info("pruned orphaned notifications",
			logger.String("user", user),
			logger.Int("dropped", dropped))
		pruned += dropped
	}

	return pruned
}

// pruneSavedItems keeps the items whose id still resolves, preserving
// order, and reports how many were dropped.
func pruneSavedItems(items []domain.SavedItem, exists func(string, domain.Kind) bool) ([]domain.SavedItem, int) {
	kept := items[:0:0]
	for _, item := range items {
		if exists(item.ID, item.Type) {
			kept = append(kept, item)
		}
	}
	return kept, len(items) - len(kept)
}

// pruneEventIDs keeps the event ids that still resolve, preserving order.
func pruneEventIDs(ids []string, exists func(string, domain.Kind) bool) ([]string, int) {
	kept := ids[:0:0]
	for _, id := range ids {
		if exists(id, domain.KindEvent) {
			kept = append(kept, id)
		}
	}
	return kept, len(ids) - len(kept)
}
