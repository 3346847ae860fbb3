// Package memory keeps crawl records in-memory for development and tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"newswatch/internal/crawler"
)

// Store implements crawler.Store with mutex-guarded maps.
type Store struct {
	mu        sync.RWMutex
	articles  map[string]crawler.Article
	order     []string
	words     map[string]int
	snapshots []crawler.Snapshot
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		articles: make(map[string]crawler.Article),
		words:    make(map[string]int),
	}
}

// UpsertArticle inserts the article unless its URL is already present.
func (s *Store) UpsertArticle(_ context.Context, article crawler.Article) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.articles[article.URL]; exists {
		return false, nil
	}
	s.articles[article.URL] = article
	s.order = append(s.order, article.URL)
	return true, nil
}

// AppendSnapshot adds the snapshot to the append-only log.
func (s *Store) AppendSnapshot(_ context.Context, snapshot crawler.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshots = append(s.snapshots, snapshot)
	return nil
}

// ReconcileWordFrequencies accumulates counts for words in the list and
// deletes every stored word absent from it.
func (s *Store) ReconcileWordFrequencies(_ context.Context, top []crawler.WordCount) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keep := make(map[string]struct{}, len(top))
	for _, wc := range top {
		keep[wc.Word] = struct{}{}
		s.words[wc.Word] += wc.Count
	}
	for word := range s.words {
		if _, ok := keep[word]; !ok {
			delete(s.words, word)
		}
	}
	return nil
}

// ArticleBodies returns the body text of every stored article in insertion
// order.
func (s *Store) ArticleBodies(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bodies := make([]string, 0, len(s.order))
	for _, url := range s.order {
		bodies = append(bodies, s.articles[url].Text)
	}
	return bodies, nil
}

// UpdateDateCounts groups stored articles by the day part of their update
// date, skipping the no-information sentinel.
func (s *Store) UpdateDateCounts(_ context.Context) ([]crawler.DateCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	buckets := make(map[string]int)
	for _, article := range s.articles {
		if article.UpdateDate == "" || article.UpdateDate == crawler.NoInformation {
			continue
		}
		day := article.UpdateDate
		if len(day) > 10 {
			day = day[:10]
		}
		buckets[day]++
	}

	counts := make([]crawler.DateCount, 0, len(buckets))
	for day, n := range buckets {
		counts = append(counts, crawler.DateCount{Date: day, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Date < counts[j].Date })
	return counts, nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error {
	return nil
}

// Close is a no-op.
func (s *Store) Close(context.Context) error {
	return nil
}

// Articles returns a copy of the stored articles keyed by URL.
func (s *Store) Articles() map[string]crawler.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]crawler.Article, len(s.articles))
	for url, article := range s.articles {
		out[url] = article
	}
	return out
}

// WordFrequencies returns a copy of the stored word counters.
func (s *Store) WordFrequencies() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]int, len(s.words))
	for word, count := range s.words {
		out[word] = count
	}
	return out
}

// Snapshots returns a copy of the snapshot log.
func (s *Store) Snapshots() []crawler.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]crawler.Snapshot(nil), s.snapshots...)
}
