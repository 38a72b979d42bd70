// Package feed provides a FeedFetcher adapter that downloads RSS 2.0
// and Atom feeds over HTTP and normalises their entries for corpus
// import.
package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
	"github.com/custodia-labs/ansa-cli/internal/core/ports/driven"
)

// Ensure Fetcher implements the interface.
var _ driven.FeedFetcher = (*Fetcher)(nil)

// Default configuration values.
const (
	// DefaultTimeout bounds one feed request.
	DefaultTimeout = 30 * time.Second

	// DefaultRequestsPerSecond is the proactive throttle applied to
	// outgoing fetches, so repeated imports stay polite to feed hosts.
	DefaultRequestsPerSecond = 1.0

	// DefaultUserAgent identifies the fetcher to feed servers.
	DefaultUserAgent = "ansa-feed-fetcher/1.0"

	// maxBodyBytes caps how much of a response body is read. Feeds
	// beyond this size are truncated rather than exhausting memory.
	maxBodyBytes = 10 << 20
)

// Config holds configuration for the feed fetcher.
type Config struct {
	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond throttles outgoing fetches (default: 1).
	RequestsPerSecond float64

	// UserAgent is sent with every request.
	UserAgent string
}

// Fetcher downloads feeds over HTTP with proactive rate limiting.
type Fetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// NewFetcher creates a feed fetcher.
func NewFetcher(cfg Config) *Fetcher {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	return &Fetcher{
		client:    &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		userAgent: cfg.UserAgent,
	}
}

// Fetch downloads the feed at url and returns its normalised items.
//
// Only the transport can fail: connection errors and non-2xx statuses
// come back wrapping domain.ErrFeedFetch so callers can tell "fetch
// failed" from "feed was empty". A response that parses to nothing
// yields an empty slice and no error.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]domain.FeedItem, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFeedFetch, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", domain.ErrFeedFetch, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFeedFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s returned status %d", domain.ErrFeedFetch, url, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrFeedFetch, err)
	}

	return Parse(raw), nil
}

// --- Wire shapes ---

// rssDocument is the RSS 2.0 <rss><channel><item> shape.
type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Encoded     string `xml:"encoded"` // content:encoded, fuller than description
	PubDate     string `xml:"pubDate"`
}

// atomDocument is the Atom <feed><entry> shape.
type atomDocument struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title     string     `xml:"title"`
	Links     []atomLink `xml:"link"`
	Content   string     `xml:"content"`
	Summary   string     `xml:"summary"`
	Published string     `xml:"published"`
	Updated   string     `xml:"updated"`
}

type atomLink struct {
	Rel  string `xml:"rel,attr"`
	Href string `xml:"href,attr"`
}

// Parse decodes a feed payload, preferring the RSS channel-item shape
// and falling back to the Atom entry shape. Item content is stripped
// of markup. Unparseable payloads yield no items, not an error.
func Parse(raw []byte) []domain.FeedItem {
	var rss rssDocument
	if err := xml.Unmarshal(raw, &rss); err == nil && len(rss.Channel.Items) > 0 {
		items := make([]domain.FeedItem, 0, len(rss.Channel.Items))
		for _, it := range rss.Channel.Items {
			content := it.Encoded
			if content == "" {
				content = it.Description
			}
			items = append(items, domain.FeedItem{
				Title:     stripMarkup(it.Title),
				Link:      it.Link,
				Content:   stripMarkup(content),
				Published: it.PubDate,
			})
		}
		return items
	}

	var atom atomDocument
	if err := xml.Unmarshal(raw, &atom); err == nil && len(atom.Entries) > 0 {
		items := make([]domain.FeedItem, 0, len(atom.Entries))
		for _, e := range atom.Entries {
			content := e.Content
			if content == "" {
				content = e.Summary
			}
			published := e.Published
			if published == "" {
				published = e.Updated
			}
			items = append(items, domain.FeedItem{
				Title:     stripMarkup(e.Title),
				Link:      alternateLink(e.Links),
				Content:   stripMarkup(content),
				Published: published,
			})
		}
		return items
	}

	return nil
}

// alternateLink picks the entry's page link: rel="alternate" (or no
// rel, which Atom defines as alternate) wins over self/related links.
func alternateLink(links []atomLink) string {
	var fallback string
	for _, l := range links {
		if l.Rel == "" || l.Rel == "alternate" {
			return l.Href
		}
		if fallback == "" {
			fallback = l.Href
		}
	}
	return fallback
}
