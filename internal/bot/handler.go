// Package bot routes user commands to the assessment, review, watch,
// performance and journal components.
package bot

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/jdeno416/tradebotx/internal/journal"
	"github.com/jdeno416/tradebotx/internal/library"
	"github.com/jdeno416/tradebotx/internal/model"
	"github.com/jdeno416/tradebotx/internal/monitor"
	"github.com/jdeno416/tradebotx/internal/notifier"
	"github.com/jdeno416/tradebotx/internal/performance"
	"github.com/jdeno416/tradebotx/internal/review"
	"github.com/jdeno416/tradebotx/internal/session"
)

const helpText = `Available commands:
/assessments — list saved assessments
/define NAME — begin drafting an assessment
/ask TEXT | WEIGHT_YES | WEIGHT_NO | [critical] — add a question to the draft
/savequiz — save the draft assessment
/start NAME — start an assessment run (abandons the current one)
/answer N yes|no|clear — answer question N
/score — show the live score
/save — archive the current run to trade review
/abandon — discard the current run
/reviews — list archived runs
/outcome KEY worked|didnotwork|pending — set a review outcome
/watch SYMBOL — watch a stock symbol
/levels ENTRY TARGET STOP — set price levels ('-' clears one)
/price — show the watch status
/wins +|- /losses +|- — adjust monthly counters
/month — show monthly performance
/journal before|after MOOD TEXT — add a mindset note
/entries [MOOD] [before|after] — list mindset notes
/quote — quote of the day`

// Handler holds the single active session and draft, and dispatches
// commands to the underlying components.
type Handler struct {
	Library     *library.Manager
	Reviews     review.Store
	Journal     *journal.Store
	Performance *performance.Manager
	Monitor     *monitor.Monitor

	current *session.Session

	draftName      string
	draftQuestions []model.Question
}

// NewHandler wires the command router.
func NewHandler(lib *library.Manager, reviews review.Store, jr *journal.Store,
	perf *performance.Manager, mon *monitor.Monitor) *Handler {
	return &Handler{
		Library:     lib,
		Reviews:     reviews,
		Journal:     jr,
		Performance: perf,
		Monitor:     mon,
	}
}

// Handle processes one user command and returns the reply text.
func (h *Handler) Handle(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return helpText
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "/assessments":
		return h.listAssessments()
	case "/define":
		return h.define(strings.Join(args, " "))
	case "/ask":
		return h.addDraftQuestion(strings.TrimSpace(strings.TrimPrefix(command, "/ask")))
	case "/savequiz":
		return h.saveDraft()
	case "/start":
		return h.startSession(strings.Join(args, " "))
	case "/answer":
		return h.answer(args)
	case "/score":
		return h.score()
	case "/save":
		return h.saveReview()
	case "/abandon":
		return h.abandon()
	case "/reviews":
		return h.listReviews()
	case "/outcome":
		return h.updateOutcome(args)
	case "/watch":
		return h.watch(args)
	case "/levels":
		return h.setLevels(args)
	case "/price":
		return notifier.FormatWatchStatus(h.Monitor.Snapshot())
	case "/wins":
		return h.adjustCounter(args, true)
	case "/losses":
		return h.adjustCounter(args, false)
	case "/month":
		return notifier.FormatPerformance(h.Performance.GetState())
	case "/journal":
		return h.addJournalEntry(args)
	case "/entries":
		return h.listJournalEntries(args)
	case "/quote":
		return notifier.FormatDailyQuote(journal.DailyQuote(time.Now()))
	default:
		return helpText
	}
}

func (h *Handler) listAssessments() string {
	names := h.Library.Names()
	if len(names) == 0 {
		return "No saved assessments. Use /define NAME to create one."
	}
	return "📁 Saved assessments:\n• " + strings.Join(names, "\n• ")
}

func (h *Handler) define(name string) string {
	if name == "" {
		return "Usage: /define NAME"
	}
	h.draftName = name
	h.draftQuestions = nil
	if existing, ok := h.Library.Get(name); ok {
		h.draftQuestions = existing.Questions
		return fmt.Sprintf("Editing %q (%d questions). Add with /ask, then /savequiz.", name, len(h.draftQuestions))
	}
	return fmt.Sprintf("Drafting %q. Add questions with /ask, then /savequiz.", name)
}

// addDraftQuestion parses "TEXT | WEIGHT_YES | WEIGHT_NO | [critical]".
func (h *Handler) addDraftQuestion(spec string) string {
	if h.draftName == "" {
		return "No draft in progress. Use /define NAME first."
	}
	parts := strings.Split(spec, "|")
	if len(parts) < 3 {
		return "Usage: /ask TEXT | WEIGHT_YES | WEIGHT_NO | [critical]"
	}
	text := strings.TrimSpace(parts[0])
	if text == "" {
		return "Question text is required."
	}
	wYes, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return fmt.Sprintf("Bad yes-weight: %v", err)
	}
	wNo, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return fmt.Sprintf("Bad no-weight: %v", err)
	}
	critical := len(parts) > 3 && strings.EqualFold(strings.TrimSpace(parts[3]), "critical")

	h.draftQuestions = append(h.draftQuestions, model.Question{
		Text: text, WeightYes: wYes, WeightNo: wNo, Critical: critical,
	})
	return fmt.Sprintf("Added question %d to %q.", len(h.draftQuestions), h.draftName)
}

func (h *Handler) saveDraft() string {
	if h.draftName == "" {
		return "No draft in progress. Use /define NAME first."
	}
	if err := h.Library.Save(h.draftName, h.draftQuestions); err != nil {
		return fmt.Sprintf("Save failed: %v", err)
	}
	name := h.draftName
	h.draftName = ""
	h.draftQuestions = nil
	return fmt.Sprintf("💾 Assessment %q saved.", name)
}

func (h *Handler) startSession(name string) string {
	if name == "" {
		return "Usage: /start NAME"
	}
	set, ok := h.Library.Get(name)
	if !ok {
		return fmt.Sprintf("No assessment named %q. See /assessments.", name)
	}

	// Starting a new run implicitly abandons the current one, no trace kept.
	if h.current != nil && h.current.State() == session.StateActive {
		h.current.Abandon()
	}

	s, err := session.Start(set)
	if err != nil {
		if errors.Is(err, session.ErrNoQuestions) {
			return fmt.Sprintf("%q has no answerable questions.", name)
		}
		return fmt.Sprintf("Start failed: %v", err)
	}
	h.current = s
	log.Printf("[INFO] session %s started over %q", s.ID, name)
	return notifier.FormatScoreboard(s)
}

func (h *Handler) answer(args []string) string {
	if h.current == nil || h.current.State() != session.StateActive {
		return "No active assessment. Use /start NAME."
	}
	if len(args) != 2 {
		return "Usage: /answer N yes|no|clear"
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Sprintf("Bad question number: %v", err)
	}

	var a model.Answer
	switch strings.ToLower(args[1]) {
	case "yes", "y":
		a = model.Yes
	case "no", "n":
		a = model.No
	case "clear":
		a = model.Unanswered
	default:
		return "Answer must be yes, no or clear."
	}

	if err := h.current.Answer(n-1, a); err != nil {
		return fmt.Sprintf("Answer failed: %v", err)
	}
	return notifier.FormatScoreboard(h.current)
}

func (h *Handler) score() string {
	if h.current == nil || h.current.State() != session.StateActive {
		return "No active assessment. Use /start NAME."
	}
	return notifier.FormatScoreboard(h.current)
}

func (h *Handler) saveReview() string {
	if h.current == nil || h.current.State() != session.StateActive {
		return "No active assessment. Use /start NAME."
	}
	rec, err := h.current.Snapshot()
	if err != nil {
		if errors.Is(err, session.ErrNothingToSave) {
			return "Answer at least one question before saving."
		}
		return fmt.Sprintf("Save failed: %v", err)
	}
	if err := h.Reviews.Append(rec); err != nil {
		return fmt.Sprintf("Archive failed: %v", err)
	}
	return fmt.Sprintf("💾 Saved to trade review (key %d). The run stays open; adjust and /save again for a new record.",
		rec.Timestamp.Unix())
}

func (h *Handler) abandon() string {
	if h.current == nil || h.current.State() != session.StateActive {
		return "No active assessment."
	}
	h.current.Abandon()
	h.current = nil
	return "Assessment discarded."
}

func (h *Handler) listReviews() string {
	records, err := h.Reviews.ListAll()
	if err != nil {
		return fmt.Sprintf("List failed: %v", err)
	}
	return notifier.FormatReviewList(records)
}

func (h *Handler) updateOutcome(args []string) string {
	if len(args) != 2 {
		return "Usage: /outcome KEY worked|didnotwork|pending"
	}
	key, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Sprintf("Bad key (use the number from /reviews): %v", err)
	}

	var outcome model.Outcome
	switch strings.ToLower(args[1]) {
	case "worked":
		outcome = model.OutcomeWorked
	case "didnotwork", "failed":
		outcome = model.OutcomeDidNotWork
	case "pending":
		outcome = model.OutcomePending
	default:
		return "Outcome must be worked, didnotwork or pending."
	}

	if err := h.Reviews.UpdateOutcome(time.Unix(key, 0), outcome); err != nil {
		if errors.Is(err, review.ErrNotFound) {
			return fmt.Sprintf("No review record with key %d.", key)
		}
		return fmt.Sprintf("Update failed: %v", err)
	}
	return fmt.Sprintf("Outcome for %d set to %s.", key, outcome)
}

func (h *Handler) watch(args []string) string {
	if len(args) != 1 {
		return "Usage: /watch SYMBOL"
	}
	symbol := strings.ToUpper(args[0])
	h.Monitor.SetSymbol(symbol)
	return fmt.Sprintf("Watching %s. Set levels with /levels ENTRY TARGET STOP.", symbol)
}

// setLevels parses three prices; '-' leaves a level unset.
func (h *Handler) setLevels(args []string) string {
	if len(args) != 3 {
		return "Usage: /levels ENTRY TARGET STOP ('-' clears a level)"
	}
	parse := func(s string) (*float64, error) {
		if s == "-" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
	entry, err := parse(args[0])
	if err != nil {
		return fmt.Sprintf("Bad entry price: %v", err)
	}
	target, err := parse(args[1])
	if err != nil {
		return fmt.Sprintf("Bad target price: %v", err)
	}
	stop, err := parse(args[2])
	if err != nil {
		return fmt.Sprintf("Bad stop-loss price: %v", err)
	}
	h.Monitor.SetLevels(entry, target, stop)
	return notifier.FormatWatchStatus(h.Monitor.Snapshot())
}

func (h *Handler) adjustCounter(args []string, wins bool) string {
	if len(args) != 1 || (args[0] != "+" && args[0] != "-") {
		return "Usage: /wins +|- or /losses +|-"
	}
	switch {
	case wins && args[0] == "+":
		h.Performance.AddWin()
	case wins:
		h.Performance.RemoveWin()
	case args[0] == "+":
		h.Performance.AddLoss()
	default:
		h.Performance.RemoveLoss()
	}
	return notifier.FormatPerformance(h.Performance.GetState())
}

func (h *Handler) addJournalEntry(args []string) string {
	if len(args) < 3 {
		return "Usage: /journal before|after MOOD TEXT"
	}
	var entryType model.EntryType
	switch strings.ToLower(args[0]) {
	case "before":
		entryType = model.EntryBeforeTrade
	case "after":
		entryType = model.EntryAfterTrade
	default:
		return "Entry type must be before or after."
	}
	entry := model.JournalEntry{
		Timestamp: time.Now(),
		Type:      entryType,
		Mood:      args[1],
		Text:      strings.Join(args[2:], " "),
	}
	if err := h.Journal.Append(&entry); err != nil {
		return fmt.Sprintf("Journal save failed: %v", err)
	}
	return "✍️ Entry saved."
}

func (h *Handler) listJournalEntries(args []string) string {
	var f journal.Filter
	for _, arg := range args {
		switch strings.ToLower(arg) {
		case "before":
			f.Type = model.EntryBeforeTrade
		case "after":
			f.Type = model.EntryAfterTrade
		default:
			f.Mood = arg
		}
	}
	entries, err := h.Journal.List(f)
	if err != nil {
		return fmt.Sprintf("List failed: %v", err)
	}
	return notifier.FormatJournalEntries(entries)
}
