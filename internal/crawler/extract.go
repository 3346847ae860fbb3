package crawler

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selectors matching the layout of the target news site. Changing these
// breaks compatibility with already stored records.
const (
	listingStubSelector  = "article.col-12"
	stubTitleSelector    = "h2.haber-baslik"
	stubSummarySelector  = "div.haber-content div.haber-desc"
	featuredImgSelector  = "img.onresim.wp-post-image"
	bodyImgSelector      = "div.post_line img"
	bodyParagraphSelector  = "div.post_line div.yazi_icerik p"
	bylineDateSelector   = "div.yazibio span.tarih time"
	publishLabel         = "Yayınlanma"
	updateLabel          = "Güncelleme"
	svgPlaceholderPrefix = "data:image/svg+xml;base64"
)

var (
	// ErrNoLink is returned when a listing fragment has no anchor.
	ErrNoLink = errors.New("listing fragment has no link")
	// ErrNoTitle is returned when the headline element is missing.
	ErrNoTitle = errors.New("listing fragment has no headline")
)

// ListingStubs returns every article fragment found on a listing page.
func ListingStubs(doc *goquery.Document) []*goquery.Selection {
	var stubs []*goquery.Selection
	doc.Find(listingStubSelector).Each(func(_ int, sel *goquery.Selection) {
		stubs = append(stubs, sel)
	})
	return stubs
}

// ExtractStub pulls the detail URL, title, and summary out of one listing
// fragment. A missing link or headline is an explicit error; the whole
// article is skipped in that case.
func ExtractStub(sel *goquery.Selection) (Stub, error) {
	href, ok := sel.Find("a").First().Attr("href")
	if !ok || href == "" {
		return Stub{}, ErrNoLink
	}

	title := sel.Find(stubTitleSelector).First()
	if title.Length() == 0 {
		return Stub{}, ErrNoTitle
	}

	return Stub{
		URL:     href,
		Title:   strings.TrimSpace(title.Text()),
		Summary: strings.TrimSpace(sel.Find(stubSummarySelector).First().Text()),
	}, nil
}

// ExtractImageURLs collects image sources from a detail document: first the
// deferred source of every featured image, then the src of every body image,
// in document order. Placeholder values ("#" and inlined SVG data URIs) are
// dropped.
func ExtractImageURLs(doc *goquery.Document) []string {
	var urls []string
	doc.Find(featuredImgSelector).Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr("data-src"); ok {
			urls = append(urls, src)
		}
	})
	doc.Find(bodyImgSelector).Each(func(_ int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		if !ok {
			return
		}
		if src == "#" || strings.HasPrefix(src, svgPlaceholderPrefix) {
			return
		}
		urls = append(urls, src)
	})
	return urls
}

// ExtractText joins the trimmed text of every body paragraph with single
// spaces, in document order.
func ExtractText(doc *goquery.Document) string {
	var parts []string
	doc.Find(bodyParagraphSelector).Each(func(_ int, sel *goquery.Selection) {
		parts = append(parts, strings.TrimSpace(sel.Text()))
	})
	return strings.Join(parts, " ")
}

// ExtractDates scans the byline time elements. A datetime attribute becomes
// the publish date when its enclosing text carries the publish label, or the
// update date under the update label. Either may come back empty.
func ExtractDates(doc *goquery.Document) (publishDate, updateDate string) {
	doc.Find(bylineDateSelector).Each(func(_ int, sel *goquery.Selection) {
		datetime, ok := sel.Attr("datetime")
		if !ok {
			return
		}
		parentText := sel.Parent().Text()
		switch {
		case strings.Contains(parentText, publishLabel):
			publishDate = datetime
		case strings.Contains(parentText, updateLabel):
			updateDate = datetime
		}
	})
	return publishDate, updateDate
}

// OrNoInformation maps an empty date to the stored sentinel.
func OrNoInformation(date string) string {
	if date == "" {
		return NoInformation
	}
	return date
}
