package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAreaLabel     = "F-North Ward / Sion / Matunga"
	defaultKeyword       = "water"
	defaultGeminiModel   = "gemini-2.5-flash-lite"
	defaultGeminiBase    = "https://generativelanguage.googleapis.com/v1beta/openai/"
	defaultRequestsPM    = 5
	defaultArticleChars  = 3000
	defaultFetchArticles = true
)

// defaultFeedURLs are the Google News search feeds scanned when FEED_URLS
// is not set.
var defaultFeedURLs = []string{
	"https://news.google.com/rss/search?q=Mumbai+water+cut+when:1d&hl=en-IN&gl=IN&ceid=IN:en",
	"https://news.google.com/rss/search?q=BMC+water+supply+when:1d&hl=en-IN&gl=IN&ceid=IN:en",
}

const defaultArticleTimeout = 10 * time.Second

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	FeedURLs          []string
	AreaLabel         string
	Keyword           string
	GeminiAPIKey      string
	GeminiModel       string
	GeminiBaseURL     string
	TelegramToken     string
	TelegramChatID    int64
	RequestsPerMinute int
	FetchArticles     bool
	ArticleTimeout    time.Duration
	ArticleMaxChars   int
}

// Load reads environment variables, filling in reasonable defaults.
// Missing secrets are not an error: they disable the dependent capability.
func Load() Config {
	return Config{
		FeedURLs:          urlsWithDefault("FEED_URLS", defaultFeedURLs),
		AreaLabel:         stringWithDefault("AREA_LABEL", defaultAreaLabel),
		Keyword:           stringWithDefault("KEYWORD", defaultKeyword),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       stringWithDefault("GEMINI_MODEL", defaultGeminiModel),
		GeminiBaseURL:     stringWithDefault("GEMINI_BASE_URL", defaultGeminiBase),
		TelegramToken:     os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID:    chatIDFromEnv("CHAT_ID"),
		RequestsPerMinute: intWithDefault("REQUESTS_PER_MINUTE", defaultRequestsPM),
		FetchArticles:     boolWithDefault("FETCH_ARTICLE_TEXT", defaultFetchArticles),
		ArticleTimeout:    durationFromSeconds("ARTICLE_TIMEOUT_SECONDS", int(defaultArticleTimeout/time.Second)),
		ArticleMaxChars:   intWithDefault("ARTICLE_MAX_CHARS", defaultArticleChars),
	}
}

func stringWithDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func urlsWithDefault(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var urls []string
	for _, u := range strings.Split(v, ",") {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	if len(urls) == 0 {
		return fallback
	}
	return urls
}

func intWithDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
		log.Printf("invalid %s=%s, using default %d", key, v, fallback)
	}
	return fallback
}

func boolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
		log.Printf("invalid %s=%s, using default %t", key, v, fallback)
	}
	return fallback
}

func durationFromSeconds(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
		log.Printf("invalid %s=%s, using default %d seconds", key, v, fallback)
	}
	return time.Duration(fallback) * time.Second
}

// chatIDFromEnv parses the Telegram chat identifier. Zero means unset,
// which disables the notifier.
func chatIDFromEnv(key string) int64 {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("invalid %s=%s, notifier disabled", key, v)
		return 0
	}
	return id
}
