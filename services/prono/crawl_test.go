package prono

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/punoko/hfr/lib/crawl"
	"github.com/punoko/hfr/lib/scrapers/hfr"

	"github.com/stretchr/testify/require"
)

func pageHTML(lastPage int, messages ...string) string {
	return fmt.Sprintf(`<html><body><table><tbody>
<tr class="cBackHeader fondForum2PagesHaut"><td><div class="left">Pages : <a href="#">1</a> <a href="#">2</a> %d</div></td></tr>
%s
</tbody></table></body></html>`, lastPage, strings.Join(messages, "\n"))
}

func TestCrawl(t *testing.T) {
	valid := strings.Join(validLines(), "<br/>")
	page1 := pageHTML(2,
		messageHTML("alice", "100", fixtureDate, valid),
		messageHTML("Publicité", "", fixtureDate, "buy stuff"),
		messageHTML("bob", "101", fixtureDate, valid),
	)
	page2 := pageHTML(2,
		// page-boundary repost of bob's message
		messageHTML("bob", "101", fixtureDate, "Reprise du message précédent :<br/>"+valid),
		messageHTML("carol", "102", fixtureDate, valid),
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/topic-sujet_1_1.htm":
			fmt.Fprint(w, page1)
		case "/topic-sujet_1_2.htm":
			fmt.Fprint(w, page2)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	client := hfr.NewClient(hfr.ClientOptions{TopicUrl: server.URL + "/topic-sujet_1"})

	entries, pages, err := Crawl(context.Background(), client, crawl.Options{StartPage: 1, PageLimit: 10})
	require.NoError(t, err)
	require.Equal(t, 2, pages)

	// the advertisement and the boundary repost are both gone
	require.Equal(t, 3, entries.Len())
	require.Equal(t, []string{"100", "101", "102"}, entries.Keys())

	record, ok := entries.Get("101")
	require.True(t, ok)
	require.Equal(t, "bob", record.User)
	require.Len(t, record.Results, seriesPerRound)
}

func TestCrawlFetchFailureAborts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(http.NotFound))
	t.Cleanup(server.Close)
	client := hfr.NewClient(hfr.ClientOptions{TopicUrl: server.URL + "/topic-sujet_1"})

	_, _, err := Crawl(context.Background(), client, crawl.Options{StartPage: 1, PageLimit: 3})
	require.Error(t, err)
}
