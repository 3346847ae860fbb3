// Package crawler defines core types shared across subsystems.
package crawler

import "time"

// NoInformation is stored when a detail page carries no publish or update date.
const NoInformation = "No information"

// Article is the record persisted for each distinct news URL.
// Records are created once and never mutated; a duplicate URL is a no-op skip.
type Article struct {
	URL         string   `bson:"url"`
	Title       string   `bson:"title"`
	Summary     string   `bson:"summary"`
	Text        string   `bson:"text"`
	ImageURLs   []string `bson:"image_urls"`
	PublishDate string   `bson:"publish_date"`
	UpdateDate  string   `bson:"update_date"`
}

// Snapshot captures the aggregate outcome of one crawl cycle.
// Snapshots are immutable and append-only, one per cycle.
type Snapshot struct {
	RunID          string    `bson:"run_id"`
	RequestCount   int       `bson:"request_count"`
	SuccessCount   int       `bson:"success_count"`
	FailureCount   int       `bson:"failure_count"`
	ElapsedSeconds float64   `bson:"elapsed_seconds"`
	Timestamp      time.Time `bson:"timestamp"`
}

// WordCount pairs a normalized word with its occurrence count.
type WordCount struct {
	Word  string `bson:"word"`
	Count int    `bson:"count"`
}

// DateCount is one bucket of the update-date grouped report.
type DateCount struct {
	Date  string `bson:"_id"`
	Count int    `bson:"count"`
}

// Stub holds the fields extracted from one listing-page article fragment.
type Stub struct {
	URL     string
	Title   string
	Summary string
}

// PageRange is a contiguous slice of listing pages assigned to one worker.
// Start and End are inclusive one-based page numbers.
type PageRange struct {
	Start int
	End   int
}
