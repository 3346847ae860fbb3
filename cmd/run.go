package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"newswatch/internal/api"
	"newswatch/internal/app"
	"newswatch/internal/clock/system"
	"newswatch/internal/console"
	"newswatch/internal/crawler"
	collyfetcher "newswatch/internal/fetcher/colly"
	"newswatch/internal/scheduler"
)

// newRunCmd creates the 'run' subcommand: the crawl daemon.
func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Runs the crawl cycle loop until interrupted",
		Long: `Runs full crawl cycles forever: crawl the configured page range with the
worker pool, rank the stored words, render the chart, reconcile the word
frequency collection, then sleep the configured interval. An interrupt
signal stops the loop after the current cycle.`,

		RunE: runDaemon,
	}
}

func runDaemon(cmd *cobra.Command, _ []string) error {
	appInstance, err := resolveApp(cmd.Context())
	if err != nil {
		return err
	}
	logger := appInstance.Logger()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sched := buildScheduler(appInstance)
	opsServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", appInstance.Config().Server.Port),
		Handler:           api.NewServer(appInstance.Store(), logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("ops server started", zap.Int("port", appInstance.Config().Server.Port))
		if err := opsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("ops server error", zap.Error(err))
			stop()
		}
	}()

	err = sched.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if serr := opsServer.Shutdown(shutdownCtx); serr != nil {
		logger.Error("ops server shutdown error", zap.Error(serr))
	}

	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(cmd.OutOrStdout(), "Crawling is stopping.")
		return nil
	}
	return err
}

func buildScheduler(appInstance *app.App) *scheduler.Scheduler {
	cfg := appInstance.Config()
	fetcher := collyfetcher.New(collyfetcher.Config{
		UserAgent: cfg.Crawl.UserAgent,
		Timeout:   cfg.FetchTimeout(),
	})
	coordinator := crawler.NewCoordinator(
		crawler.Config{
			ListingURL: cfg.Crawl.ListingURL,
			Pages:      cfg.Crawl.Pages,
			Workers:    cfg.Crawl.Workers,
		},
		fetcher,
		appInstance.Store(),
		system.New(),
		appInstance.Logger(),
	)
	return scheduler.New(
		scheduler.Config{
			Interval:      cfg.CycleInterval(),
			TopN:          cfg.Words.TopN,
			ChartPath:     cfg.Report.ChartPath,
			PromptTimeout: cfg.PromptTimeout(),
		},
		coordinator,
		appInstance.Store(),
		console.New(os.Stdin, os.Stdout),
		os.Stdout,
		appInstance.Logger(),
	)
}
