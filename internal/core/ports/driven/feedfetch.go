package driven

import (
	"context"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
)

// FeedFetcher retrieves and normalises RSS 2.0 or Atom feeds.
type FeedFetcher interface {
	// Fetch downloads the feed at url and returns its normalised
	// items. A feed that parses to nothing yields an empty slice and
	// no error; a transport failure or non-success status yields an
	// error wrapping domain.ErrFeedFetch, so callers can distinguish
	// "empty feed" from "fetch failed".
	Fetch(ctx context.Context, url string) ([]domain.FeedItem, error)
}
