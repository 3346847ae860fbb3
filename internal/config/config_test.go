package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, StoreMongo, cfg.Store.Provider)
	require.Equal(t, "mongodb://localhost:27017", cfg.Store.URI)
	require.Equal(t, "newswatch", cfg.Store.Database)
	require.Equal(t, 50, cfg.Crawl.Pages)
	require.Equal(t, 20, cfg.Crawl.Workers)
	require.Contains(t, cfg.Crawl.ListingURL, "%d")
	require.Equal(t, 20, cfg.Cycle.IntervalMinutes)
	require.Equal(t, 10, cfg.Cycle.PromptTimeoutSeconds)
	require.Equal(t, 10, cfg.Words.TopN)
	require.Equal(t, "top_10_words.png", cfg.Report.ChartPath)
	require.Equal(t, "logs", cfg.Logging.Dir)
	require.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadFailsWithoutMongoURI(t *testing.T) {
	t.Setenv("MONGODB_URI", "")

	_, err := Load("")
	require.Error(t, err)
	require.Contains(t, err.Error(), "MONGODB_URI")
}

func TestLoadMemoryProviderNeedsNoURI(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("NEWSWATCH_STORE_PROVIDER", "memory")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, StoreMemory, cfg.Store.Provider)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://db.internal:27017")
	t.Setenv("NEWSWATCH_CRAWL_PAGES", "5")
	t.Setenv("NEWSWATCH_CRAWL_WORKERS", "2")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Crawl.Pages)
	require.Equal(t, 2, cfg.Crawl.Workers)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	base, err := Load("")
	require.NoError(t, err)

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown provider", func(c *Config) { c.Store.Provider = "etcd" }},
		{"empty database", func(c *Config) { c.Store.Database = "" }},
		{"no page placeholder", func(c *Config) { c.Crawl.ListingURL = "https://example.com/" }},
		{"zero pages", func(c *Config) { c.Crawl.Pages = 0 }},
		{"zero workers", func(c *Config) { c.Crawl.Workers = 0 }},
		{"zero timeout", func(c *Config) { c.Crawl.TimeoutSeconds = 0 }},
		{"zero interval", func(c *Config) { c.Cycle.IntervalMinutes = 0 }},
		{"zero top n", func(c *Config) { c.Words.TopN = 0 }},
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
