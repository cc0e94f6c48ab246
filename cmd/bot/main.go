package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jdeno416/tradebotx/internal/bot"
	"github.com/jdeno416/tradebotx/internal/config"
	"github.com/jdeno416/tradebotx/internal/feed"
	"github.com/jdeno416/tradebotx/internal/journal"
	"github.com/jdeno416/tradebotx/internal/library"
	"github.com/jdeno416/tradebotx/internal/model"
	"github.com/jdeno416/tradebotx/internal/monitor"
	"github.com/jdeno416/tradebotx/internal/notifier"
	"github.com/jdeno416/tradebotx/internal/performance"
	"github.com/jdeno416/tradebotx/internal/review"
	"github.com/jdeno416/tradebotx/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] TradeBotX starting...")

	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init price fetcher
	var fetcher feed.Fetcher
	if cfg.Feed.BaseURL != "" {
		fetcher = feed.NewCustomFetcher(cfg.Feed.BaseURL, cfg.Feed.APIKey, cfg.Proxy)
	} else {
		fetcher = feed.NewYahooFetcher()
	}
	log.Printf("[INFO] price source: %s", fetcher.Name())

	// Init question-set library and performance counters
	lib := library.NewManager(cfg.Storage.AssessmentsFile)
	perf := performance.NewManager(cfg.Storage.PerformanceFile)

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Init review store
	var reviews review.Store
	if rs, err := review.NewSQLiteStore(cfg.Storage.ReviewsDB); err != nil {
		log.Printf("[WARN] init review store failed, using noop: %v", err)
		reviews = review.NewNoopStore()
	} else {
		reviews = rs
		defer rs.Close()
	}

	// Init journal store
	jr, err := journal.NewStore(cfg.Storage.JournalDB)
	if err != nil {
		log.Fatalf("[FATAL] init journal store: %v", err)
	}
	defer jr.Close()

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init price threshold monitor, routing signals to Telegram
	interval := time.Duration(cfg.Feed.PollIntervalSeconds) * time.Second
	mon := monitor.NewMonitor(fetcher, interval, func(sig model.ThresholdSignal) {
		if err := tn.SendWithRetry(ctx, notifier.FormatThresholdAlert(sig), 3); err != nil {
			log.Printf("[ERROR] send threshold alert: %v", err)
		}
	})
	if cfg.Feed.Symbol != "" {
		mon.SetSymbol(cfg.Feed.Symbol)
	}
	go mon.Run(ctx)

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, perf, tn)
	if err := sched.RegisterAll(cfg.Schedule.DailyQuoteCron, cfg.Schedule.MonthlyResetCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start command polling
	handler := bot.NewHandler(lib, reviews, jr, perf, mon)
	go tn.StartPolling(ctx, handler.Handle)
	log.Println("[INFO] Telegram polling started")

	log.Println("[INFO] TradeBotX is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] TradeBotX stopped")
}
