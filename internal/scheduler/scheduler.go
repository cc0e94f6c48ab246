// Package scheduler runs the recurring housekeeping tasks.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jdeno416/tradebotx/internal/journal"
	"github.com/jdeno416/tradebotx/internal/notifier"
	"github.com/jdeno416/tradebotx/internal/performance"
)

// Sender delivers scheduled notifications.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler owns the cron runner and its registered tasks.
type Scheduler struct {
	Cron        *cron.Cron
	Performance *performance.Manager
	Sender      Sender
	Ctx         context.Context
}

// NewScheduler creates a scheduler with second-resolution cron expressions.
func NewScheduler(ctx context.Context, perf *performance.Manager, sender Sender) *Scheduler {
	return &Scheduler{
		Cron:        cron.New(cron.WithSeconds()),
		Performance: perf,
		Sender:      sender,
		Ctx:         ctx,
	}
}

// RegisterAll registers the daily quote push and the monthly counter reset.
func (s *Scheduler) RegisterAll(dailyQuoteCron, monthlyResetCron string) error {
	if _, err := s.Cron.AddFunc(dailyQuoteCron, s.dailyQuoteTask); err != nil {
		return fmt.Errorf("register daily quote task: %w", err)
	}
	if _, err := s.Cron.AddFunc(monthlyResetCron, s.monthlyResetTask); err != nil {
		return fmt.Errorf("register monthly reset task: %w", err)
	}
	return nil
}

// Start starts the cron runner.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron runner gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) dailyQuoteTask() {
	log.Println("[INFO] sending daily quote")
	s.trySend(notifier.FormatDailyQuote(journal.DailyQuote(time.Now())))
}

func (s *Scheduler) monthlyResetTask() {
	log.Println("[INFO] running monthly performance reset")
	final := s.Performance.GetState()
	s.Performance.Reset()
	msg := fmt.Sprintf("📅 <b>Monthly reset</b>\n\nLast month closed at %d wins / %d losses. Counters zeroed.",
		final.MonthlyWins, final.MonthlyLosses)
	s.trySend(msg)
}

func (s *Scheduler) trySend(text string) {
	if err := s.Sender.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
