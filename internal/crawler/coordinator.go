package crawler

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"newswatch/internal/metrics"
)

// Config governs one crawl cycle.
type Config struct {
	// ListingURL is a format string with one integer verb for the page number.
	ListingURL string
	Pages      int
	Workers    int
}

// Coordinator partitions the page range across a bounded worker pool, joins
// the pool, and turns the aggregated counters into a persisted snapshot.
type Coordinator struct {
	cfg     Config
	fetcher Fetcher
	store   Store
	clock   Clock
	logger  *zap.Logger
}

// NewCoordinator constructs a Coordinator.
func NewCoordinator(cfg Config, fetcher Fetcher, store Store, clock Clock, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		cfg:     cfg,
		fetcher: fetcher,
		store:   store,
		clock:   clock,
		logger:  logger,
	}
}

// Run executes one full crawl and returns the persisted snapshot. Worker
// failures never abort the run; only snapshot persistence can fail.
func (c *Coordinator) Run(ctx context.Context) (Snapshot, error) {
	stats := NewStats()
	ranges := Partition(c.cfg.Pages, c.cfg.Workers)
	start := c.clock.Now()

	c.logger.Info("crawl started",
		zap.Int("pages", c.cfg.Pages),
		zap.Int("workers", len(ranges)),
	)

	var wg sync.WaitGroup
	for _, pages := range ranges {
		wg.Add(1)
		go func(pages PageRange) {
			defer wg.Done()
			worker := NewWorker(c.fetcher, c.store, stats, c.cfg.ListingURL, c.logger)
			worker.CrawlRange(ctx, pages)
		}(pages)
	}
	wg.Wait()

	elapsed := c.clock.Now().Sub(start)
	metrics.ObserveCycle(elapsed)

	snapshot, err := stats.Snapshot(elapsed, c.clock.Now())
	if err != nil {
		return Snapshot{}, err
	}
	if err := c.store.AppendSnapshot(ctx, snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("append snapshot: %w", err)
	}

	c.logger.Info("crawl finished",
		zap.Int("requests", snapshot.RequestCount),
		zap.Int("successes", snapshot.SuccessCount),
		zap.Int("failures", snapshot.FailureCount),
		zap.Float64("elapsed_seconds", snapshot.ElapsedSeconds),
	)
	return snapshot, nil
}
