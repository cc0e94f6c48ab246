package bot

import (
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdeno416/tradebotx/internal/feed"
	"github.com/jdeno416/tradebotx/internal/journal"
	"github.com/jdeno416/tradebotx/internal/library"
	"github.com/jdeno416/tradebotx/internal/model"
	"github.com/jdeno416/tradebotx/internal/monitor"
	"github.com/jdeno416/tradebotx/internal/performance"
	"github.com/jdeno416/tradebotx/internal/review"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	dir := t.TempDir()

	reviews, err := review.NewSQLiteStore(filepath.Join(dir, "reviews.db"))
	require.NoError(t, err)
	t.Cleanup(func() { reviews.Close() })

	jr, err := journal.NewStore(filepath.Join(dir, "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { jr.Close() })

	return NewHandler(
		library.NewManager(filepath.Join(dir, "assessments.json")),
		reviews,
		jr,
		performance.NewManager(filepath.Join(dir, "performance.json")),
		monitor.NewMonitor(&feed.MockFetcher{Price: 120}, time.Second, nil),
	)
}

func TestHandler_DraftAndSaveAssessment(t *testing.T) {
	h := newTestHandler(t)

	assert.Contains(t, h.Handle("/assessments"), "No saved assessments")
	assert.Contains(t, h.Handle("/define pre-trade"), "Drafting")
	assert.Contains(t, h.Handle("/ask Trend confirmed? | 10 | -10"), "Added question 1")
	assert.Contains(t, h.Handle("/ask Over the loss limit? | 20 | -5 | critical"), "Added question 2")
	assert.Contains(t, h.Handle("/savequiz"), "saved")
	assert.Contains(t, h.Handle("/assessments"), "pre-trade")

	set, ok := h.Library.Get("pre-trade")
	require.True(t, ok)
	require.Len(t, set.Questions, 2)
	assert.True(t, set.Questions[1].Critical)
}

func TestHandler_AssessmentRunAndSave(t *testing.T) {
	h := newTestHandler(t)
	h.Handle("/define pre-trade")
	h.Handle("/ask Trend confirmed? | 10 | -10")
	h.Handle("/ask Over the loss limit? | 20 | -5 | critical")
	h.Handle("/savequiz")

	assert.Contains(t, h.Handle("/start pre-trade"), "pre-trade")
	assert.Contains(t, h.Handle("/save"), "Answer at least one question")

	reply := h.Handle("/answer 1 yes")
	assert.Contains(t, reply, "33.33%")

	reply = h.Handle("/answer 2 no")
	assert.Contains(t, reply, "16.67%")

	assert.Contains(t, h.Handle("/save"), "Saved to trade review")

	records, err := h.Reviews.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 5.0, records[0].Score)
	assert.Equal(t, model.OutcomePending, records[0].Outcome)

	// Critical yes zeroes the live score.
	reply = h.Handle("/answer 2 yes")
	assert.Contains(t, reply, "critical condition")
	assert.Contains(t, reply, "0.00%")
}

func TestHandler_OutcomeUpdate(t *testing.T) {
	h := newTestHandler(t)
	h.Handle("/define quick")
	h.Handle("/ask Setup ok? | 10 | -10")
	h.Handle("/savequiz")
	h.Handle("/start quick")
	h.Handle("/answer 1 yes")
	h.Handle("/save")

	records, err := h.Reviews.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	key := strconv.FormatInt(records[0].Timestamp.Unix(), 10)

	assert.Contains(t, h.Handle("/outcome "+key), "Usage")
	assert.Contains(t, h.Handle("/outcome 123456 worked"), "No review record")
	assert.Contains(t, h.Handle("/outcome "+key+" worked"), "Worked")

	records, err = h.Reviews.ListAll()
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeWorked, records[0].Outcome)
}

func TestHandler_StartNewRunAbandonsCurrent(t *testing.T) {
	h := newTestHandler(t)
	h.Handle("/define a")
	h.Handle("/ask Q1? | 10 | -10")
	h.Handle("/savequiz")
	h.Handle("/start a")
	h.Handle("/answer 1 yes")

	first := h.current
	h.Handle("/start a")
	assert.NotSame(t, first, h.current, "restarting must create a fresh session")
	assert.Equal(t, 0, h.current.Result().Answered)

	// The abandoned run left no trace in the archive.
	records, err := h.Reviews.ListAll()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHandler_WatchAndLevels(t *testing.T) {
	h := newTestHandler(t)

	assert.Contains(t, h.Handle("/price"), "No symbol")
	assert.Contains(t, h.Handle("/watch tsla"), "TSLA")

	reply := h.Handle("/levels 110 150 100")
	assert.Contains(t, reply, "$150.00")
	assert.Contains(t, reply, "$100.00")

	reply = h.Handle("/levels - 150 -")
	assert.Contains(t, reply, "Entry: not set")
	assert.Contains(t, reply, "Stop-Loss: not set")

	assert.Contains(t, h.Handle("/levels x y z"), "Bad entry price")
}

func TestHandler_PerformanceCounters(t *testing.T) {
	h := newTestHandler(t)
	h.Handle("/wins +")
	h.Handle("/wins +")
	h.Handle("/losses +")
	h.Handle("/wins -")

	reply := h.Handle("/month")
	assert.Contains(t, reply, "Wins: 1")
	assert.Contains(t, reply, "Losses: 1")
}

func TestHandler_Journal(t *testing.T) {
	h := newTestHandler(t)
	assert.Contains(t, h.Handle("/journal before Calm sticking to the plan"), "saved")
	assert.Contains(t, h.Handle("/journal after Anxious exited a bit early"), "saved")
	assert.Contains(t, h.Handle("/journal sideways Calm nope"), "before or after")

	all := h.Handle("/entries")
	assert.Contains(t, all, "sticking to the plan")
	assert.Contains(t, all, "exited a bit early")

	calm := h.Handle("/entries Calm")
	assert.Contains(t, calm, "sticking to the plan")
	assert.NotContains(t, calm, "exited a bit early")

	after := h.Handle("/entries after")
	assert.NotContains(t, after, "sticking to the plan")
	assert.Contains(t, after, "exited a bit early")
}

func TestHandler_UnknownCommandShowsHelp(t *testing.T) {
	h := newTestHandler(t)
	assert.Contains(t, h.Handle("/bogus"), "Available commands")
}
