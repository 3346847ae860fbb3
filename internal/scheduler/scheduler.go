// Package scheduler drives the crawl/analyze/report cycle loop.
package scheduler

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"newswatch/internal/console"
	"newswatch/internal/crawler"
	"newswatch/internal/report"
	"newswatch/internal/words"
)

// CycleRunner executes one full crawl and returns its snapshot.
type CycleRunner interface {
	Run(ctx context.Context) (crawler.Snapshot, error)
}

// Config controls the outer loop and the per-cycle reporting steps.
type Config struct {
	Interval      time.Duration
	TopN          int
	ChartPath     string
	PromptTimeout time.Duration
}

// Scheduler runs full cycles back to back with a fixed sleep in between.
// Cycles never overlap; the loop stops when the context is canceled.
type Scheduler struct {
	cfg     Config
	runner  CycleRunner
	store   crawler.Store
	prompt  *console.Prompt
	out     io.Writer
	logger  *zap.Logger
	render  func(top []crawler.WordCount, path string) error
}

// New constructs a Scheduler. out receives the console reporting lines.
func New(cfg Config, runner CycleRunner, store crawler.Store, prompt *console.Prompt, out io.Writer, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cfg:     cfg,
		runner:  runner,
		store:   store,
		prompt:  prompt,
		out:     out,
		logger:  logger,
		render:  report.RenderChart,
	}
}

// Run loops RunCycle until the context is canceled. A failed cycle is
// logged and the loop keeps going; only cancellation ends it.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		if err := s.RunCycle(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Error("cycle failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.cfg.Interval):
		}
	}
}

// RunCycle executes one crawl, derives and stores the word ranking, renders
// the chart, and optionally prints the update-date report.
func (s *Scheduler) RunCycle(ctx context.Context) error {
	if _, err := s.runner.Run(ctx); err != nil {
		return fmt.Errorf("crawl: %w", err)
	}

	bodies, err := s.store.ArticleBodies(ctx)
	if err != nil {
		return fmt.Errorf("scan article bodies: %w", err)
	}
	top := words.TopN(bodies, s.cfg.TopN)
	s.printTopWords(top)

	// The chart is a rendering sink: a failed render is logged and the
	// cycle keeps going.
	if err := s.render(top, s.cfg.ChartPath); err != nil {
		s.logger.Error("chart render failed", zap.String("path", s.cfg.ChartPath), zap.Error(err))
	}

	if err := s.store.ReconcileWordFrequencies(ctx, top); err != nil {
		return fmt.Errorf("reconcile word frequencies: %w", err)
	}

	if s.prompt != nil && s.prompt.Ask(ctx, "Print the update-date grouped report?", s.cfg.PromptTimeout) {
		if err := s.printDateReport(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler) printTopWords(top []crawler.WordCount) {
	fmt.Fprintf(s.out, "Top %d words:\n", s.cfg.TopN)
	for i, wc := range top {
		fmt.Fprintf(s.out, "%2d. %s: %d\n", i+1, wc.Word, wc.Count)
	}
}

func (s *Scheduler) printDateReport(ctx context.Context) error {
	counts, err := s.store.UpdateDateCounts(ctx)
	if err != nil {
		return fmt.Errorf("group update dates: %w", err)
	}
	for _, dc := range counts {
		fmt.Fprintf(s.out, "Update Date: %s - Count: %d\n", dc.Date, dc.Count)
	}
	return nil
}
