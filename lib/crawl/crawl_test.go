package crawl

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/punoko/hfr/lib/scrapers/hfr"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func pageHTML(lastPage int) string {
	return fmt.Sprintf(`<html><body><table><tbody>
<tr class="cBackHeader fondForum2PagesHaut"><td><div class="left">Pages : <a href="#">1</a> <a href="#">2</a> %d</div></td></tr>
</tbody></table></body></html>`, lastPage)
}

func threadServer(t *testing.T, lastPage int) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for page := 1; page <= lastPage; page++ {
			if r.URL.Path == fmt.Sprintf("/topic-sujet_1_%d.htm", page) {
				fmt.Fprint(w, pageHTML(lastPage))
				return
			}
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRunStopsAtLastPage(t *testing.T) {
	server := threadServer(t, 3)
	client := hfr.NewClient(hfr.ClientOptions{TopicUrl: server.URL + "/topic-sujet_1"})

	var visited []int
	pages, err := Run(context.Background(), client, Options{StartPage: 1, PageLimit: 10},
		func(_ context.Context, page int, _ *goquery.Document) error {
			visited = append(visited, page)
			return nil
		})
	require.NoError(t, err)
	require.Equal(t, 3, pages)
	require.Equal(t, []int{1, 2, 3}, visited)
}

func TestRunHonorsPageLimit(t *testing.T) {
	server := threadServer(t, 5)
	client := hfr.NewClient(hfr.ClientOptions{TopicUrl: server.URL + "/topic-sujet_1"})

	var visited []int
	pages, err := Run(context.Background(), client, Options{StartPage: 1, PageLimit: 2},
		func(_ context.Context, page int, _ *goquery.Document) error {
			visited = append(visited, page)
			return nil
		})
	require.NoError(t, err)
	require.Equal(t, 2, pages)
	require.Equal(t, []int{1, 2}, visited)
}

func TestRunFetchErrorIsFatal(t *testing.T) {
	server := threadServer(t, 2)
	client := hfr.NewClient(hfr.ClientOptions{TopicUrl: server.URL + "/topic-sujet_1"})

	visited := 0
	_, err := Run(context.Background(), client, Options{StartPage: 7, PageLimit: 5},
		func(_ context.Context, _ int, _ *goquery.Document) error {
			visited++
			return nil
		})
	require.Error(t, err)
	require.Zero(t, visited)
}

func TestRunMalformedHeaderIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>not a thread</body></html>")
	}))
	t.Cleanup(server.Close)
	client := hfr.NewClient(hfr.ClientOptions{TopicUrl: server.URL + "/topic-sujet_1"})

	_, err := Run(context.Background(), client, Options{StartPage: 1, PageLimit: 5},
		func(_ context.Context, _ int, _ *goquery.Document) error {
			return nil
		})
	require.ErrorContains(t, err, "navigation header")
}

func TestRunVisitErrorAborts(t *testing.T) {
	server := threadServer(t, 3)
	client := hfr.NewClient(hfr.ClientOptions{TopicUrl: server.URL + "/topic-sujet_1"})

	boom := fmt.Errorf("boom")
	pages, err := Run(context.Background(), client, Options{StartPage: 1, PageLimit: 10},
		func(_ context.Context, _ int, _ *goquery.Document) error {
			return boom
		})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, pages)
}
