package rss

import (
	"context"
	"log"
	"time"

	"github.com/mmcdole/gofeed"
)

// Item represents a normalized feed entry.
type Item struct {
	Title       string
	Link        string
	PublishedAt time.Time
}

// Fetcher pulls and parses a fixed list of search feeds.
type Fetcher struct {
	feedURLs []string
	parser   *gofeed.Parser
	logger   *log.Logger
}

// NewFetcher creates a fetcher over the given feed URLs.
func NewFetcher(feedURLs []string, logger *log.Logger) *Fetcher {
	return &Fetcher{
		feedURLs: feedURLs,
		parser:   gofeed.NewParser(),
		logger:   logger,
	}
}

// Fetch pulls every configured feed and returns the entries in feed
// order. A feed that is unreachable or malformed contributes zero
// entries; the remaining feeds are still scanned.
func (f *Fetcher) Fetch(ctx context.Context) []Item {
	var items []Item
	for _, url := range f.feedURLs {
		feed, err := f.parser.ParseURLWithContext(url, ctx)
		if err != nil {
			f.logger.Printf("failed to fetch feed %s: %v", url, err)
			continue
		}
		for _, entry := range feed.Items {
			items = append(items, Item{
				Title:       entry.Title,
				Link:        entry.Link,
				PublishedAt: publishedTime(entry),
			})
		}
	}
	return items
}

// publishedTime returns the entry timestamp, or the zero time when the
// feed carries none. A zero timestamp is filtered out downstream rather
// than treated as an error.
func publishedTime(entry *gofeed.Item) time.Time {
	if entry.PublishedParsed != nil {
		return *entry.PublishedParsed
	}
	if entry.UpdatedParsed != nil {
		return *entry.UpdatedParsed
	}
	return time.Time{}
}
