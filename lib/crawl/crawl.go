// Package crawl drives the sequential page-by-page traversal of a
// forum thread.
package crawl

import (
	"context"

	"github.com/punoko/hfr/lib/scrapers/hfr"

	"github.com/PuerkitoBio/goquery"
)

type Options struct {
	StartPage int
	// PageLimit caps how many pages are fetched even when the thread
	// has more.
	PageLimit int
}

// Run fetches pages one at a time starting at opts.StartPage and hands
// each document to visit. The thread's last page number is read from
// the first fetched page's navigation header and caps the iteration.
// Fetch and navigation errors abort the crawl; visit never sees a page
// that failed to fetch. Returns the number of pages processed.
func Run(ctx context.Context, client *hfr.Client, opts Options, visit func(ctx context.Context, page int, doc *goquery.Document) error) (int, error) {
	lastPage := 0
	fetched := 0
	for page := opts.StartPage; page < opts.StartPage+opts.PageLimit; page++ {
		doc, err := client.FetchPage(ctx, page)
		if err != nil {
			return fetched, err
		}
		fetched++

		if err := visit(ctx, page, doc); err != nil {
			return fetched, err
		}

		if lastPage == 0 {
			lastPage, err = hfr.LastPage(doc)
			if err != nil {
				return fetched, err
			}
		}
		if page >= lastPage {
			break
		}
	}
	return fetched, nil
}
