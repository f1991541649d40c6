package olympics

import (
	"context"
	"log/slog"

	"github.com/punoko/hfr/lib/crawl"
	"github.com/punoko/hfr/lib/scrapers/hfr"

	"github.com/PuerkitoBio/goquery"
)

// Crawl scrapes the thread sequentially, returning the accepted posts
// keyed by post id plus the counters accumulated along the way. A fetch
// failure aborts the whole crawl.
func Crawl(ctx context.Context, client *hfr.Client, opts crawl.Options) (*crawl.Table[int, Record], *Counters, int, error) {
	ctx, span := tracer.Start(ctx, "olympics:Crawl")
	defer span.End()

	entries := crawl.NewTable[int, Record]()
	counters := NewCounters()
	pages, err := crawl.Run(ctx, client, opts, func(ctx context.Context, page int, doc *goquery.Document) error {
		for _, msg := range hfr.Messages(doc) {
			record, err := Extract(msg, client, page, counters)
			if err != nil {
				slog.Info("discard", "reason", err.Error())
				continue
			}
			slog.Info("accept", "id", record.ID, "user", record.User)
			entries.Put(record.ID, record)
		}
		return nil
	})
	if err != nil {
		return nil, counters, pages, err
	}
	return entries, counters, pages, nil
}
