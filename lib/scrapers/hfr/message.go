package hfr

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/punoko/hfr/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// DateLayout is the fixed posting timestamp format used by the forum.
const DateLayout = "Posté le 02-01-2006 à 15:04:05"

// repostMarker opens messages that repeat the tail of the previous page.
const repostMarker = "Reprise du message précédent :"

var (
	ErrAdvertisement = errors.New("advertisement")
	ErrRepost        = errors.New("skipping first message of new page (duplicate)")
)

var quoteCountRegex = regexp.MustCompile(`Message cité (\d+) fois`)

// Message is one tr.message row of a thread page.
type Message struct {
	sel *goquery.Selection
}

func (m Message) Author() string {
	user := m.sel.Find("td.messCase1 b").First().Text()
	// some usernames embed zero-width spaces
	user = strings.ReplaceAll(user, "\u200b", "")
	return strings.TrimSpace(user)
}

// PermalinkID returns the numeric post id carried by the per-message
// anchor, without its one-letter prefix. Advertisement placeholder rows
// have no anchor and are reported as ErrAdvertisement.
func (m Message) PermalinkID() (string, error) {
	anchor := m.sel.Find("td.messCase1 a[name]").First()
	if anchor.Length() == 0 {
		return "", ErrAdvertisement
	}
	name := anchor.AttrOr("name", "")
	if len(name) < 2 {
		return "", fmt.Errorf("malformed permalink anchor %q", name)
	}
	return name[1:], nil
}

func (m Message) Date() (time.Time, error) {
	cell := m.sel.Find("td.messCase2 div div").First()
	strs := htmlutil.StrippedStrings(cell)
	if len(strs) == 0 {
		return time.Time{}, fmt.Errorf("date cell not found")
	}
	return time.Parse(DateLayout, strs[0])
}

// QuoteCount returns how many times the message has been quoted so far,
// zero when the citation link is absent.
func (m Message) QuoteCount() int {
	count := 0
	m.sel.Find("a.cLink").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		match := quoteCountRegex.FindStringSubmatch(a.Text())
		if match == nil {
			return true
		}
		count, _ = strconv.Atoi(match[1])
		return false
	})
	return count
}

// Body locates the message's text container by the id derived from the
// post id.
func (m Message) Body(id string) (*goquery.Selection, error) {
	body := m.sel.Find("div#para" + id)
	if body.Length() == 0 {
		return nil, fmt.Errorf("body container para%s not found", id)
	}
	return body, nil
}

// nested divs hold quoted messages, spans hold signatures, both must go
// before reading the post's own text

func StripQuotes(body *goquery.Selection)     { body.Find("div").Remove() }
func StripImages(body *goquery.Selection)     { body.Find("img").Remove() }
func StripSignatures(body *goquery.Selection) { body.Find("span").Remove() }

// ImageLabels returns the alternate-text label of every embedded image
// that has one.
func ImageLabels(body *goquery.Selection) []string {
	var labels []string
	body.Find("img").Each(func(_ int, img *goquery.Selection) {
		if alt := img.AttrOr("alt", ""); alt != "" {
			labels = append(labels, alt)
		}
	})
	return labels
}

// Lines returns the remaining post text as ordered trimmed non-empty
// lines.
func Lines(body *goquery.Selection) []string {
	return htmlutil.StrippedStrings(body)
}

// IsRepost reports whether the lines open with the forum convention
// marking a message fully repeated from the previous page.
func IsRepost(lines []string) bool {
	return len(lines) > 0 && lines[0] == repostMarker
}
