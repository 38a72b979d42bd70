package domain

// FeedItem is a single entry from an RSS 2.0 or Atom feed after
// normalisation. Markup has been stripped from Content; Published is
// the feed's own timestamp string, passed through untouched.
type FeedItem struct {
	Title     string
	Link      string
	Content   string
	Published string
}
