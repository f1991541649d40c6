// Package prono scrapes the NBA playoff prediction thread: every valid
// post carries a full first-round slate of fifteen series predictions,
// anything else is discarded with a logged reason.
package prono

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/punoko/hfr/lib/scrapers/hfr"
)

// a full playoff round has exactly fifteen series
const seriesPerRound = 15

// Record is one accepted post.
type Record struct {
	User    string
	ID      string
	Date    time.Time
	Results []Result
}

// Result is the (winner, total games) pair exported per series.
type Result struct {
	Winner TeamCode
	Total  int
}

// Extract turns one message row into a Record, or reports why the post
// is discarded. Individual lines that fail to parse are logged and
// skipped; the post as a whole must still yield exactly fifteen series.
func Extract(msg hfr.Message) (Record, error) {
	user := msg.Author()
	id, err := msg.PermalinkID()
	if err != nil {
		slog.Info("message", "user", user)
		return Record{}, err
	}
	date, err := msg.Date()
	if err != nil {
		return Record{}, err
	}
	slog.Info("message", "date", date, "id", id, "user", user)

	body, err := msg.Body(id)
	if err != nil {
		return Record{}, err
	}
	hfr.StripQuotes(body)
	hfr.StripImages(body)
	hfr.StripSignatures(body)

	lines := hfr.Lines(body)
	if hfr.IsRepost(lines) {
		return Record{}, hfr.ErrRepost
	}

	var results []Result
	for _, line := range lines {
		p, err := ParseLine(line)
		if err != nil {
			slog.Info("discard line", "reason", err.Error(), "line", line)
			continue
		}
		slog.Info("match", "winner", p.Winner, "total", p.Total, "line", line)
		results = append(results, Result{Winner: p.Winner, Total: p.Total})
	}

	if len(results) == 0 {
		return Record{}, errors.New("no series found")
	}
	if len(results) != seriesPerRound {
		return Record{}, fmt.Errorf("number of series must be %d, found %d", seriesPerRound, len(results))
	}
	return Record{User: user, ID: id, Date: date, Results: results}, nil
}
