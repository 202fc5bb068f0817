package service

import (
	"context"
	"log"
	"time"

	"golang.org/x/time/rate"

	"watercutalert/internal/analysis"
	"watercutalert/internal/clock"
	"watercutalert/internal/config"
	"watercutalert/internal/filter"
	"watercutalert/internal/notify"
	"watercutalert/internal/rss"
)

// FeedSource yields the entries of the configured feeds. Failed feeds
// contribute zero entries rather than an error.
type FeedSource interface {
	Fetch(ctx context.Context) []rss.Item
}

// ArticleFetcher retrieves article body text. It never fails; on error
// it returns a fallback string.
type ArticleFetcher interface {
	Fetch(ctx context.Context, link string) string
}

// Notifier delivers a formatted alert message.
type Notifier interface {
	Enabled() bool
	Send(text string) error
}

// Service drives one scan: fetch feeds, filter, classify, notify.
type Service struct {
	feeds    FeedSource
	articles ArticleFetcher // nil when article fetching is disabled
	analyzer analysis.Analyzer
	notifier Notifier
	limiter  *rate.Limiter
	logger   *log.Logger
	cfg      config.Config
	now      func() time.Time
}

// NewService creates a Service instance. The limiter paces classifier
// calls to stay under the provider's requests-per-minute quota.
func NewService(feeds FeedSource, articles ArticleFetcher, analyzer analysis.Analyzer, notifier Notifier, logger *log.Logger, cfg config.Config) *Service {
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 1
	}
	return &Service{
		feeds:    feeds,
		articles: articles,
		analyzer: analyzer,
		notifier: notifier,
		limiter:  rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1),
		logger:   logger,
		cfg:      cfg,
		now:      clock.Now,
	}
}

// Run performs a single best-effort pass over all feeds. Every external
// failure is logged and absorbed; Run errors only when ctx is cancelled
// while waiting on the classifier pacing.
func (s *Service) Run(ctx context.Context) error {
	ref := s.now()
	s.logger.Printf("scanning news for %s", s.cfg.AreaLabel)

	if !s.analyzer.Ready() {
		s.logger.Println("classifier not configured, all entries will be treated as not relevant")
	}

	seen := make(map[string]struct{})
	alerted := false

	for _, item := range s.feeds.Fetch(ctx) {
		if _, dup := seen[item.Link]; dup {
			continue
		}
		seen[item.Link] = struct{}{}

		if !filter.PublishedToday(item.PublishedAt, ref) {
			continue
		}
		if !filter.TitleMatches(item.Title, s.cfg.Keyword) {
			continue
		}

		var articleText string
		if s.articles != nil {
			articleText = s.articles.Fetch(ctx, item.Link)
		}

		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}

		s.logger.Printf("asking classifier: %s", item.Title)
		result, err := s.analyzer.Evaluate(ctx, analysis.Request{
			Headline:    item.Title,
			Link:        item.Link,
			Date:        ref,
			ArticleText: articleText,
		})
		if err != nil {
			// Fail-safe: an unreachable or confused classifier
			// must not produce alerts.
			s.logger.Printf("classification failed for %q: %v", item.Title, err)
			continue
		}
		if !result.Relevant {
			continue
		}

		alerted = true
		alert := notify.Alert{
			Area:     s.cfg.AreaLabel,
			Summary:  result.Summary,
			Headline: item.Title,
			Link:     item.Link,
		}
		if !s.notifier.Enabled() {
			s.logger.Printf("notifier not configured, would alert: %s", item.Title)
			continue
		}
		s.logger.Printf("match found, sending alert: %s", item.Title)
		if err := s.notifier.Send(alert.Render()); err != nil {
			s.logger.Printf("alert delivery failed for %q: %v", item.Title, err)
		}
	}

	if !alerted {
		s.logger.Println("no water cut detected for today")
	}
	return nil
}
