package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Feed struct {
		BaseURL             string `yaml:"base_url"`
		APIKey              string `yaml:"api_key"`
		Symbol              string `yaml:"symbol"`
		PollIntervalSeconds int    `yaml:"poll_interval_seconds"`
	} `yaml:"feed"`
	Schedule struct {
		DailyQuoteCron   string `yaml:"daily_quote_cron"`
		MonthlyResetCron string `yaml:"monthly_reset_cron"`
	} `yaml:"schedule"`
	Storage struct {
		ReviewsDB       string `yaml:"reviews_db"`
		JournalDB       string `yaml:"journal_db"`
		AssessmentsFile string `yaml:"assessments_file"`
		PerformanceFile string `yaml:"performance_file"`
	} `yaml:"storage"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("FEED_BASE_URL"); v != "" {
		cfg.Feed.BaseURL = v
	}
	if v := os.Getenv("FEED_API_KEY"); v != "" {
		cfg.Feed.APIKey = v
	}
	if v := os.Getenv("WATCH_SYMBOL"); v != "" {
		cfg.Feed.Symbol = v
	}
	if v := os.Getenv("POLL_INTERVAL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Feed.PollIntervalSeconds = n
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("REVIEWS_DB_PATH"); v != "" {
		cfg.Storage.ReviewsDB = v
	}

	// Defaults
	if cfg.Feed.PollIntervalSeconds == 0 {
		cfg.Feed.PollIntervalSeconds = 5
	}
	if cfg.Schedule.DailyQuoteCron == "" {
		cfg.Schedule.DailyQuoteCron = "0 0 8 * * *"
	}
	if cfg.Schedule.MonthlyResetCron == "" {
		cfg.Schedule.MonthlyResetCron = "0 0 0 1 * *"
	}
	if cfg.Storage.ReviewsDB == "" {
		cfg.Storage.ReviewsDB = "data/trade_reviews.db"
	}
	if cfg.Storage.JournalDB == "" {
		cfg.Storage.JournalDB = "data/journal.db"
	}
	if cfg.Storage.AssessmentsFile == "" {
		cfg.Storage.AssessmentsFile = "data/saved_assessments.json"
	}
	if cfg.Storage.PerformanceFile == "" {
		cfg.Storage.PerformanceFile = "data/performance.json"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.Feed.PollIntervalSeconds < 0 {
		return fmt.Errorf("feed.poll_interval_seconds must not be negative")
	}
	return nil
}
