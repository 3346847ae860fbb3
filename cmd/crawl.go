package cmd

import (
	"github.com/spf13/cobra"
)

// newCrawlCmd creates the 'crawl' subcommand: a single cycle, no loop.
func newCrawlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crawl",
		Short: "Runs exactly one crawl cycle and exits",
		Long: `Runs one full cycle (crawl, rank, chart, reconcile, optional report)
against the configured store and exits. Useful for cron-style scheduling
and for inspecting a single run.`,

		RunE: func(cmd *cobra.Command, _ []string) error {
			appInstance, err := resolveApp(cmd.Context())
			if err != nil {
				return err
			}
			return buildScheduler(appInstance).RunCycle(cmd.Context())
		},
	}
}
