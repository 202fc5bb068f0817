package article

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// FallbackText is handed to the classifier when the article body cannot
// be retrieved, so it judges from the headline alone.
const FallbackText = "Article text unavailable. Decide from the headline alone."

// Fetcher downloads an article page and extracts its paragraph text.
type Fetcher struct {
	client   *http.Client
	maxChars int
	logger   *log.Logger
}

// NewFetcher creates an article fetcher with a per-request timeout and a
// bound on the extracted character count.
func NewFetcher(timeout time.Duration, maxChars int, logger *log.Logger) *Fetcher {
	return &Fetcher{
		client:   &http.Client{Timeout: timeout},
		maxChars: maxChars,
		logger:   logger,
	}
}

// Fetch returns the visible paragraph text of the linked page, truncated
// to the configured bound. It never fails: any network, HTTP, or parse
// problem yields FallbackText.
func (f *Fetcher) Fetch(ctx context.Context, link string) string {
	text, err := f.fetch(ctx, link)
	if err != nil {
		f.logger.Printf("article fetch failed for %s: %v", link, err)
		return FallbackText
	}
	if text == "" {
		return FallbackText
	}
	return text
}

func (f *Fetcher) fetch(ctx context.Context, link string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			parts = append(parts, t)
		}
	})

	return truncate(strings.Join(parts, " "), f.maxChars), nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
