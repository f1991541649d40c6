// Package hfr reads forum.hardware.fr discussion threads: it fetches
// numbered topic pages and navigates their markup (navigation header,
// message rows, metadata and body cells) so callers only deal with
// message-level text and attributes.
package hfr

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/punoko/hfr/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

type Client struct {
	// topic base url, without the trailing _<page>.htm
	TopicUrl string
	Http     *resty.Client
}

type ClientOptions struct {
	TopicUrl string
	Timeout  time.Duration
}

func NewClient(opts ClientOptions) *Client {
	client := resty.New()
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}
	client.SetTimeout(timeout)

	return &Client{
		TopicUrl: opts.TopicUrl,
		Http:     client,
	}
}

func (c *Client) PageUrl(page int) string {
	return fmt.Sprintf("%s_%d.htm", c.TopicUrl, page)
}

func (c *Client) FetchPage(ctx context.Context, page int) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "client:FetchPage")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		Get(c.PageUrl(page))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch page")
		return nil, err
	}
	if res.IsError() {
		err := fmt.Errorf("fetch page %d: %s", page, res.Status())
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse page html")
		return nil, err
	}

	slog.Info("fetched", "page", page)
	return doc, nil
}

// LastPage reads the thread's page count from the top navigation header.
// A header that cannot be read means the page is not a forum thread at
// all, which is fatal to a crawl.
func LastPage(doc *goquery.Document) (int, error) {
	div := doc.Find("tr.cBackHeader.fondForum2PagesHaut div.left").First()
	if div.Length() == 0 {
		return 0, fmt.Errorf("page navigation header not found")
	}
	last := div.Nodes[0].LastChild
	if last == nil {
		return 0, fmt.Errorf("page navigation header is empty")
	}
	n, err := strconv.Atoi(strings.TrimSpace(htmlutil.Text(last)))
	if err != nil {
		return 0, fmt.Errorf("malformed page navigation header: %w", err)
	}
	return n, nil
}

func Messages(doc *goquery.Document) []Message {
	var out []Message
	doc.Find("tr.message").Each(func(_ int, sel *goquery.Selection) {
		out = append(out, Message{sel: sel})
	})
	return out
}
