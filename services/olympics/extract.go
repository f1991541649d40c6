// Package olympics scrapes the olympics discussion thread for
// engagement statistics: who posts, who gets quoted, which emotes and
// images circulate, and when the thread is most active.
package olympics

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/punoko/hfr/lib/scrapers/hfr"
)

// Record is one accepted post's engagement data.
type Record struct {
	User   string
	ID     int
	Date   time.Time
	Quotes int
	Page   int
	URL    string
}

// Counters accumulates the crawl-wide frequency tables fed during
// extraction. Passed explicitly so extraction has no hidden state.
type Counters struct {
	Users  FrequencyTable
	Emotes FrequencyTable
	Images FrequencyTable
}

func NewCounters() *Counters {
	return &Counters{
		Users:  FrequencyTable{},
		Emotes: FrequencyTable{},
		Images: FrequencyTable{},
	}
}

// Extract turns one message row into a Record, or reports why the post
// is discarded. Side effect: user, emote and image counters grow for
// every post that gets past the advertisement check.
func Extract(msg hfr.Message, client *hfr.Client, page int, counters *Counters) (Record, error) {
	user := msg.Author()
	rawID, err := msg.PermalinkID()
	if err != nil {
		slog.Info("message", "user", user)
		return Record{}, err
	}
	counters.Users[user]++

	id, err := strconv.Atoi(rawID)
	if err != nil {
		return Record{}, fmt.Errorf("non-numeric post id %q", rawID)
	}
	date, err := msg.Date()
	if err != nil {
		return Record{}, err
	}
	quotes := msg.QuoteCount()
	url := fmt.Sprintf("%s#t%d", client.PageUrl(page), id)
	slog.Info("message", "date", date, "id", id, "user", user, "url", url)

	body, err := msg.Body(rawID)
	if err != nil {
		return Record{}, err
	}
	hfr.StripQuotes(body)
	hfr.StripSignatures(body)

	// catalog image labels before the images go: http-ish labels are
	// shared pictures, everything else is a forum emote
	for _, label := range hfr.ImageLabels(body) {
		if strings.HasPrefix(label, "http") {
			counters.Images[label]++
		} else {
			counters.Emotes[label]++
		}
	}
	hfr.StripImages(body)

	lines := hfr.Lines(body)
	if hfr.IsRepost(lines) {
		return Record{}, hfr.ErrRepost
	}

	return Record{
		User:   user,
		ID:     id,
		Date:   date,
		Quotes: quotes,
		Page:   page,
		URL:    url,
	}, nil
}
