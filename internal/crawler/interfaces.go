package crawler

import (
	"context"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher retrieves a URL and returns the parsed document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}

// Store persists articles, word frequencies, and per-cycle snapshots.
type Store interface {
	// UpsertArticle inserts the article unless a record with the same URL
	// already exists. It reports whether a new record was written.
	UpsertArticle(ctx context.Context, article Article) (bool, error)

	// AppendSnapshot adds a snapshot to the append-only performance log.
	AppendSnapshot(ctx context.Context, snapshot Snapshot) error

	// ReconcileWordFrequencies folds the latest top-N list into the stored
	// entries: counts for known words accumulate, new words are inserted,
	// and words absent from the list are deleted.
	ReconcileWordFrequencies(ctx context.Context, top []WordCount) error

	// ArticleBodies returns the body text of every stored article.
	ArticleBodies(ctx context.Context) ([]string, error)

	// UpdateDateCounts groups stored articles by update date (day granularity).
	UpdateDateCounts(ctx context.Context) ([]DateCount, error)

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	Close(ctx context.Context) error
}

// Clock returns the current time (useful for testing).
type Clock interface {
	Now() time.Time
}
