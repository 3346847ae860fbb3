package crawler

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"newswatch/internal/metrics"
)

// Worker crawls the listing pages of one assigned range, extracting and
// persisting every article it can. Failures are counted and logged, never
// propagated: a broken article must not take down its page, and a broken
// page must not take down the run.
type Worker struct {
	fetcher    Fetcher
	store      Store
	stats      *Stats
	listingURL string
	logger     *zap.Logger
}

// NewWorker constructs a Worker. listingURL is a format string with a single
// integer verb for the page number.
func NewWorker(fetcher Fetcher, store Store, stats *Stats, listingURL string, logger *zap.Logger) *Worker {
	return &Worker{
		fetcher:    fetcher,
		store:      store,
		stats:      stats,
		listingURL: listingURL,
		logger:     logger,
	}
}

// CrawlRange processes every page in the range in increasing order.
func (w *Worker) CrawlRange(ctx context.Context, pages PageRange) {
	metrics.IncActiveWorkers()
	defer metrics.DecActiveWorkers()

	for page := pages.Start; page <= pages.End; page++ {
		w.crawlPage(ctx, page)
	}
}

func (w *Worker) crawlPage(ctx context.Context, page int) {
	url := fmt.Sprintf(w.listingURL, page)

	doc, err := w.fetchCounted(ctx, url)
	if err != nil {
		w.stats.AddFailure()
		metrics.ObservePage(metrics.StatusFailed)
		w.logger.Error("listing page fetch failed", zap.String("url", url), zap.Error(err))
		return
	}
	metrics.ObservePage(metrics.StatusOK)

	for _, stub := range ListingStubs(doc) {
		w.processArticle(ctx, stub)
	}
}

// processArticle runs the per-article pipeline for one listing fragment.
// Any failure along the way counts once and moves on to the next article.
func (w *Worker) processArticle(ctx context.Context, sel *goquery.Selection) {
	stub, err := ExtractStub(sel)
	if err != nil {
		w.stats.AddFailure()
		metrics.ObserveArticle(metrics.StatusFailed)
		w.logger.Error("article stub extraction failed", zap.Error(err))
		return
	}

	if err := w.ingestDetail(ctx, stub); err != nil {
		w.stats.AddFailure()
		metrics.ObserveArticle(metrics.StatusFailed)
		w.logger.Error("article processing failed", zap.String("url", stub.URL), zap.Error(err))
		return
	}

	w.stats.AddSuccess()
	metrics.ObserveArticle(metrics.StatusOK)
}

func (w *Worker) ingestDetail(ctx context.Context, stub Stub) error {
	doc, err := w.fetchCounted(ctx, stub.URL)
	if err != nil {
		return fmt.Errorf("fetch detail page: %w", err)
	}

	publishDate, updateDate := ExtractDates(doc)
	article := Article{
		URL:         stub.URL,
		Title:       stub.Title,
		Summary:     stub.Summary,
		Text:        ExtractText(doc),
		ImageURLs:   ExtractImageURLs(doc),
		PublishDate: OrNoInformation(publishDate),
		UpdateDate:  OrNoInformation(updateDate),
	}

	inserted, err := w.store.UpsertArticle(ctx, article)
	if err != nil {
		return fmt.Errorf("upsert article: %w", err)
	}
	if inserted {
		w.logger.Info("article stored", zap.String("url", article.URL))
	} else {
		w.logger.Info("article already stored, skipped", zap.String("url", article.URL))
	}
	return nil
}

func (w *Worker) fetchCounted(ctx context.Context, url string) (*goquery.Document, error) {
	w.stats.AddRequest()
	metrics.ObserveRequest()
	return w.fetcher.Fetch(ctx, url)
}
