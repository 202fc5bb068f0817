package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"watercutalert/internal/analysis"
	"watercutalert/internal/article"
	"watercutalert/internal/config"
	"watercutalert/internal/notify"
	"watercutalert/internal/rss"
	"watercutalert/internal/service"
)

func main() {
	// A .env file is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := log.New(os.Stdout, "[watercutalert] ", log.LstdFlags)

	if cfg.GeminiAPIKey == "" {
		logger.Println("warning: GEMINI_API_KEY is not set, classification is disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	analyzer := analysis.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL, logger)
	fetcher := rss.NewFetcher(cfg.FeedURLs, logger)

	var articles service.ArticleFetcher
	if cfg.FetchArticles {
		articles = article.NewFetcher(cfg.ArticleTimeout, cfg.ArticleMaxChars, logger)
	}

	notifier, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID, logger)
	if err != nil {
		// A broken notifier must not stop the scan; run with it disabled.
		logger.Printf("telegram setup failed, notifications disabled: %v", err)
		notifier, _ = notify.NewTelegram("", 0, logger)
	}

	svc := service.NewService(fetcher, articles, analyzer, notifier, logger, cfg)

	// The scan is best-effort: external schedulers re-invoke this
	// periodically, so the process always exits zero.
	if err := svc.Run(ctx); err != nil {
		logger.Printf("scan interrupted: %v", err)
	}
}
