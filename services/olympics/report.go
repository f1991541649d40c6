package olympics

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/punoko/hfr/lib/crawl"
)

// FrequencyTable maps a key (user, emote, image url, time bucket) to an
// occurrence count.
type FrequencyTable map[string]int

type Entry struct {
	Count int
	Key   string
}

// Ranked drops keys seen at most once and orders the rest by count
// descending, then key descending.
func Ranked(table FrequencyTable) []Entry {
	var out []Entry
	for key, count := range table {
		if count > 1 {
			out = append(out, Entry{Count: count, Key: key})
		}
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(b.Key, a.Key)
	})
	return out
}

// Top selects the leading entries with a threshold rule: when the list
// is longer than n, the count of the n-th entry becomes the cutoff and
// every entry at or above it is kept, so ties at the boundary are never
// split. Shorter lists are returned whole.
func Top(entries []Entry, n int) []Entry {
	threshold := 0
	if len(entries) > n {
		threshold = entries[n-1].Count
	}
	var out []Entry
	for _, e := range entries {
		if e.Count >= threshold {
			out = append(out, e)
		}
	}
	return out
}

const (
	hourBucketLayout   = "2006-01-02 15"
	minuteBucketLayout = "2006-01-02 15:04"
)

// Report holds the six ranked leaderboards built from a finished crawl.
type Report struct {
	Quotes  []Entry // keyed by post url
	Users   []Entry
	Emotes  []Entry
	Images  []Entry
	Hours   []Entry
	Minutes []Entry
}

func BuildReport(entries *crawl.Table[int, Record], counters *Counters) Report {
	quotes := FrequencyTable{}
	hours := FrequencyTable{}
	minutes := FrequencyTable{}
	entries.Each(func(_ int, record Record) {
		quotes[record.URL] = record.Quotes
		hours[record.Date.Format(hourBucketLayout)]++
		minutes[record.Date.Format(minuteBucketLayout)]++
	})

	return Report{
		Quotes:  Ranked(quotes),
		Users:   Ranked(counters.Users),
		Emotes:  Ranked(counters.Emotes),
		Images:  Ranked(counters.Images),
		Hours:   Ranked(hours),
		Minutes: Ranked(minutes),
	}
}

const topSize = 20

// Print writes the six sections to w, one "count key" line per entry.
// Section headers go to the log so the data stays machine-readable.
func (r Report) Print(w io.Writer) {
	sections := []struct {
		Label   string
		Entries []Entry
	}{
		{"TOP QUOTES", r.Quotes},
		{"TOP USERS", r.Users},
		{"TOP EMOTES", r.Emotes},
		{"TOP IMAGES", r.Images},
		{"TOP HOURS", r.Hours},
		{"TOP MINUTES", r.Minutes},
	}
	for _, section := range sections {
		slog.Info(section.Label)
		for _, e := range Top(section.Entries, topSize) {
			fmt.Fprintf(w, "%d %s\n", e.Count, e.Key)
		}
	}
}
