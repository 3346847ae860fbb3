package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"newswatch/internal/crawler"
)

func TestUpsertArticleIsIdempotent(t *testing.T) {
	t.Parallel()

	store := New()
	ctx := context.Background()

	article := crawler.Article{
		URL:   "https://example.com/news/one",
		Title: "Original title",
	}

	inserted, err := store.UpsertArticle(ctx, article)
	require.NoError(t, err)
	require.True(t, inserted)

	// First write wins; a later duplicate is a silent skip.
	article.Title = "Replacement title"
	inserted, err = store.UpsertArticle(ctx, article)
	require.NoError(t, err)
	require.False(t, inserted)

	articles := store.Articles()
	require.Len(t, articles, 1)
	require.Equal(t, "Original title", articles[article.URL].Title)
}

func TestReconcileWordFrequencies(t *testing.T) {
	t.Parallel()

	store := New()
	ctx := context.Background()

	require.NoError(t, store.ReconcileWordFrequencies(ctx, []crawler.WordCount{
		{Word: "HABER", Count: 5},
		{Word: "GÜNDEM", Count: 3},
	}))
	require.Equal(t, map[string]int{"HABER": 5, "GÜNDEM": 3}, store.WordFrequencies())

	// HABER persists and accumulates, GÜNDEM drops out, SON is new.
	require.NoError(t, store.ReconcileWordFrequencies(ctx, []crawler.WordCount{
		{Word: "HABER", Count: 2},
		{Word: "SON", Count: 4},
	}))
	require.Equal(t, map[string]int{"HABER": 7, "SON": 4}, store.WordFrequencies())
}

func TestAppendSnapshotIsAppendOnly(t *testing.T) {
	t.Parallel()

	store := New()
	ctx := context.Background()

	require.NoError(t, store.AppendSnapshot(ctx, crawler.Snapshot{RunID: "a"}))
	require.NoError(t, store.AppendSnapshot(ctx, crawler.Snapshot{RunID: "b"}))

	snapshots := store.Snapshots()
	require.Len(t, snapshots, 2)
	require.Equal(t, "a", snapshots[0].RunID)
	require.Equal(t, "b", snapshots[1].RunID)
}

func TestArticleBodiesInInsertionOrder(t *testing.T) {
	t.Parallel()

	store := New()
	ctx := context.Background()

	for _, a := range []crawler.Article{
		{URL: "u1", Text: "first body"},
		{URL: "u2", Text: "second body"},
		{URL: "u3", Text: "third body"},
	} {
		_, err := store.UpsertArticle(ctx, a)
		require.NoError(t, err)
	}

	bodies, err := store.ArticleBodies(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"first body", "second body", "third body"}, bodies)
}

func TestUpdateDateCounts(t *testing.T) {
	t.Parallel()

	store := New()
	ctx := context.Background()

	for _, a := range []crawler.Article{
		{URL: "u1", UpdateDate: "2024-03-01T10:00:00+03:00"},
		{URL: "u2", UpdateDate: "2024-03-01T15:30:00+03:00"},
		{URL: "u3", UpdateDate: "2024-03-02T09:00:00+03:00"},
		{URL: "u4", UpdateDate: crawler.NoInformation},
	} {
		_, err := store.UpsertArticle(ctx, a)
		require.NoError(t, err)
	}

	counts, err := store.UpdateDateCounts(ctx)
	require.NoError(t, err)
	require.Equal(t, []crawler.DateCount{
		{Date: "2024-03-01", Count: 2},
		{Date: "2024-03-02", Count: 1},
	}, counts)
}
