// Package config loads and validates daemon configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store provider names accepted in configuration.
const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// Config captures all daemon configuration knobs loaded via Viper.
type Config struct {
	Store   StoreConfig   `mapstructure:"store"`
	Crawl   CrawlConfig   `mapstructure:"crawl"`
	Cycle   CycleConfig   `mapstructure:"cycle"`
	Words   WordsConfig   `mapstructure:"words"`
	Report  ReportConfig  `mapstructure:"report"`
	Logging LoggingConfig `mapstructure:"logging"`
	Server  ServerConfig  `mapstructure:"server"`
}

// StoreConfig selects and configures the record store.
type StoreConfig struct {
	Provider string `mapstructure:"provider"`
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

// CrawlConfig governs the crawl pipeline.
type CrawlConfig struct {
	ListingURL     string `mapstructure:"listing_url"`
	Pages          int    `mapstructure:"pages"`
	Workers        int    `mapstructure:"workers"`
	UserAgent      string `mapstructure:"user_agent"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// CycleConfig controls the outer scheduling loop.
type CycleConfig struct {
	IntervalMinutes      int `mapstructure:"interval_minutes"`
	PromptTimeoutSeconds int `mapstructure:"prompt_timeout_seconds"`
}

// WordsConfig controls the frequency ranking.
type WordsConfig struct {
	TopN int `mapstructure:"top_n"`
}

// ReportConfig sets rendering sink paths.
type ReportConfig struct {
	ChartPath string `mapstructure:"chart_path"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Dir         string `mapstructure:"dir"`
	Development bool   `mapstructure:"development"`
}

// ServerConfig controls the ops HTTP server.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("NEWSWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The store connection string keeps its historical variable name.
	if err := v.BindEnv("store.uri", "MONGODB_URI"); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.provider", StoreMongo)
	v.SetDefault("store.database", "newswatch")
	v.SetDefault("crawl.listing_url", "https://turkishnetworktimes.com/kategori/gundem/page/%d/")
	v.SetDefault("crawl.pages", 50)
	v.SetDefault("crawl.workers", 20)
	v.SetDefault("crawl.user_agent", "newswatch-bot/0.1")
	v.SetDefault("crawl.timeout_seconds", 15)
	v.SetDefault("cycle.interval_minutes", 20)
	v.SetDefault("cycle.prompt_timeout_seconds", 10)
	v.SetDefault("words.top_n", 10)
	v.SetDefault("report.chart_path", "top_10_words.png")
	v.SetDefault("logging.dir", "logs")
	v.SetDefault("logging.development", false)
	v.SetDefault("server.port", 8080)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	switch c.Store.Provider {
	case StoreMongo:
		if c.Store.URI == "" {
			return fmt.Errorf("MONGODB_URI environment variable not set")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown store provider: %s", c.Store.Provider)
	}
	if c.Store.Database == "" {
		return fmt.Errorf("store.database must be set")
	}
	if !strings.Contains(c.Crawl.ListingURL, "%d") {
		return fmt.Errorf("crawl.listing_url must contain a %%d page placeholder")
	}
	if c.Crawl.Pages <= 0 {
		return fmt.Errorf("crawl.pages must be > 0")
	}
	if c.Crawl.Workers <= 0 {
		return fmt.Errorf("crawl.workers must be > 0")
	}
	if c.Crawl.TimeoutSeconds <= 0 {
		return fmt.Errorf("crawl.timeout_seconds must be > 0")
	}
	if c.Cycle.IntervalMinutes <= 0 {
		return fmt.Errorf("cycle.interval_minutes must be > 0")
	}
	if c.Words.TopN <= 0 {
		return fmt.Errorf("words.top_n must be > 0")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be > 0")
	}
	return nil
}

// FetchTimeout converts the HTTP timeout config into a duration.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.Crawl.TimeoutSeconds) * time.Second
}

// CycleInterval is the sleep between cycles.
func (c Config) CycleInterval() time.Duration {
	return time.Duration(c.Cycle.IntervalMinutes) * time.Minute
}

// PromptTimeout is the bounded wait for the interactive report prompt.
func (c Config) PromptTimeout() time.Duration {
	return time.Duration(c.Cycle.PromptTimeoutSeconds) * time.Second
}
