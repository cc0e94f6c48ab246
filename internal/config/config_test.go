package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_FileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
telegram:
  bot_token: file-token
  chat_id: "12345"
feed:
  symbol: TSLA
  poll_interval_seconds: 2
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Telegram.BotToken != "env-token" {
		t.Errorf("env override lost: %q", cfg.Telegram.BotToken)
	}
	if cfg.Feed.Symbol != "TSLA" || cfg.Feed.PollIntervalSeconds != 2 {
		t.Errorf("file values lost: %+v", cfg.Feed)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing config file must not fail: %v", err)
	}
	if cfg.Feed.PollIntervalSeconds != 5 {
		t.Errorf("default poll interval: got %d", cfg.Feed.PollIntervalSeconds)
	}
	if cfg.Storage.ReviewsDB == "" || cfg.Storage.AssessmentsFile == "" {
		t.Errorf("storage defaults missing: %+v", cfg.Storage)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("validate should require telegram credentials")
	}
}
