package prono

import (
	"context"
	"log/slog"

	"github.com/punoko/hfr/lib/crawl"
	"github.com/punoko/hfr/lib/scrapers/hfr"

	"github.com/PuerkitoBio/goquery"
)

// Crawl scrapes the prediction thread sequentially and returns the
// accepted posts keyed by post id, a later post overwriting an earlier
// one with the same id. A fetch failure aborts the whole crawl.
func Crawl(ctx context.Context, client *hfr.Client, opts crawl.Options) (*crawl.Table[string, Record], int, error) {
	ctx, span := tracer.Start(ctx, "prono:Crawl")
	defer span.End()

	entries := crawl.NewTable[string, Record]()
	pages, err := crawl.Run(ctx, client, opts, func(ctx context.Context, page int, doc *goquery.Document) error {
		for _, msg := range hfr.Messages(doc) {
			record, err := Extract(msg)
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
		return nil, pages, err
	}
	return entries, pages, nil
}
