package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/jdeno416/tradebotx/internal/model"
	"github.com/jdeno416/tradebotx/internal/scoring"
	"github.com/jdeno416/tradebotx/internal/session"
)

// FormatScoreboard renders the live state of an assessment run.
func FormatScoreboard(s *session.Session) string {
	var b strings.Builder
	set := s.Set()
	res := s.Result()

	b.WriteString(fmt.Sprintf("📋 <b>%s</b>\n\n", set.Name))
	for i, q := range set.Questions {
		marker := "▫️"
		switch s.AnswerFor(i) {
		case model.Yes:
			marker = "✅"
		case model.No:
			marker = "❌"
		}
		b.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, marker, q.Text))
	}
	b.WriteString("\n")
	b.WriteString(FormatResult(res))
	return b.String()
}

// FormatResult renders a scoring result.
func FormatResult(res scoring.Result) string {
	var b strings.Builder
	if res.CriticalTriggered {
		b.WriteString("⚠️ <b>Warning: critical condition hit. Score reset.</b>\n")
	}
	b.WriteString(fmt.Sprintf("✅ Live Score: <b>%.2f%%</b> (score %.2f, %d answered)\n",
		res.Percentage, res.Score, res.Answered))
	return b.String()
}

// FormatReviewList renders the review archive, most recent first.
func FormatReviewList(records []model.TradeReviewRecord) string {
	if len(records) == 0 {
		return "No completed assessments saved yet."
	}
	var b strings.Builder
	b.WriteString("📈 <b>Trade Review</b>\n\n")
	for _, rec := range records {
		b.WriteString(FormatReviewRecord(&rec))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatReviewRecord renders one archived assessment run.
func FormatReviewRecord(rec *model.TradeReviewRecord) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🕒 <b>%s</b> (key %d)\n", rec.Timestamp.Format(time.DateTime), rec.Timestamp.Unix()))
	b.WriteString(fmt.Sprintf("Assessment: %s | Score: %.2f | %.2f%%\n",
		rec.Assessment, rec.Score, rec.Percentage))
	for _, a := range rec.Answers {
		crit := ""
		if a.Critical {
			crit = " [critical]"
		}
		b.WriteString(fmt.Sprintf("  • %s → %s%s\n", a.Text, a.Answer, crit))
	}
	b.WriteString(fmt.Sprintf("Outcome: %s\n", rec.Outcome))
	return b.String()
}

// FormatWatchStatus renders the price watch state.
func FormatWatchStatus(w model.PriceWatch) string {
	if w.Symbol == "" {
		return "No symbol is being watched. Use /watch SYMBOL first."
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("💰 <b>%s</b>\n", w.Symbol))
	if w.HasPrice {
		stale := ""
		if w.Stale {
			stale = " ⚠️ stale"
		}
		b.WriteString(fmt.Sprintf("Current: $%.2f%s (as of %s)\n",
			w.CurrentPrice, stale, w.UpdatedAt.Format("15:04:05")))
	} else {
		b.WriteString("Current: waiting for first quote\n")
	}
	b.WriteString(formatLevel("📍 Entry", w.EntryPrice))
	b.WriteString(formatLevel("🎯 Target", w.TargetPrice))
	b.WriteString(formatLevel("⛔ Stop-Loss", w.StopLoss))
	return b.String()
}

func formatLevel(label string, v *float64) string {
	if v == nil {
		return fmt.Sprintf("%s: not set\n", label)
	}
	return fmt.Sprintf("%s: $%.2f\n", label, *v)
}

// FormatThresholdAlert renders an advisory threshold signal.
func FormatThresholdAlert(sig model.ThresholdSignal) string {
	stale := ""
	if sig.Stale {
		stale = " (price is stale)"
	}
	switch sig.Type {
	case model.SignalTargetReached:
		return fmt.Sprintf("🎯 <b>%s</b>: target $%.2f reached, now $%.2f%s",
			sig.Symbol, sig.Threshold, sig.Price, stale)
	case model.SignalStopLoss:
		return fmt.Sprintf("⛔ <b>%s</b>: stop-loss $%.2f triggered, now $%.2f%s",
			sig.Symbol, sig.Threshold, sig.Price, stale)
	}
	return ""
}

// FormatPerformance renders the monthly win/loss tally.
func FormatPerformance(state model.PerformanceState) string {
	return fmt.Sprintf("💻 <b>This Month's Performance</b>\n\n☑ Wins: %d\n☒ Losses: %d\n",
		state.MonthlyWins, state.MonthlyLosses)
}

// FormatJournalEntries renders filtered mindset journal entries.
func FormatJournalEntries(entries []model.JournalEntry) string {
	if len(entries) == 0 {
		return "No journal entries yet."
	}
	var b strings.Builder
	b.WriteString("📘 <b>Journal History</b>\n\n")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("🕒 %s | %s | %s\n%s\n\n",
			e.Timestamp.Format(time.DateTime), e.Type, e.Mood, e.Text))
	}
	return b.String()
}

// FormatDailyQuote renders the quote-of-the-day push.
func FormatDailyQuote(quote string) string {
	return fmt.Sprintf("🧘 <b>Calm Daily Quote</b>\n\n%s", quote)
}
