package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdeno416/tradebotx/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_AppendAndFilter(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	entries := []model.JournalEntry{
		{Timestamp: base, Type: model.EntryBeforeTrade, Mood: "Calm", Text: "sticking to the plan"},
		{Timestamp: base.Add(time.Hour), Type: model.EntryAfterTrade, Mood: "Anxious", Text: "exited early"},
		{Timestamp: base.Add(2 * time.Hour), Type: model.EntryBeforeTrade, Mood: "Anxious", Text: "second-guessing setup"},
	}
	for i := range entries {
		require.NoError(t, s.Append(&entries[i]))
	}

	all, err := s.List(Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "second-guessing setup", all[0].Text, "most recent first")

	anxious, err := s.List(Filter{Mood: "Anxious"})
	require.NoError(t, err)
	assert.Len(t, anxious, 2)

	before, err := s.List(Filter{Type: model.EntryBeforeTrade})
	require.NoError(t, err)
	assert.Len(t, before, 2)

	both, err := s.List(Filter{Mood: "Anxious", Type: model.EntryAfterTrade})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "exited early", both[0].Text)
}

func TestStore_RejectsBlankText(t *testing.T) {
	s := openTestStore(t)
	err := s.Append(&model.JournalEntry{Timestamp: time.Now(), Type: model.EntryBeforeTrade, Mood: "Calm"})
	assert.Error(t, err)
}

func TestStore_Moods(t *testing.T) {
	s := openTestStore(t)
	for _, mood := range []string{"Calm", "Greedy", "Calm", "Anxious"} {
		require.NoError(t, s.Append(&model.JournalEntry{
			Timestamp: time.Now(), Type: model.EntryBeforeTrade, Mood: mood, Text: "note",
		}))
	}
	moods, err := s.Moods()
	require.NoError(t, err)
	assert.Equal(t, []string{"Anxious", "Calm", "Greedy"}, moods)
}

func TestDailyQuote_StablePerDay(t *testing.T) {
	day := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	q1 := DailyQuote(day)
	q2 := DailyQuote(day.Add(10 * time.Hour))
	if q1 != q2 {
		t.Errorf("quote changed within a day: %q vs %q", q1, q2)
	}
	if q1 == "" {
		t.Error("expected a non-empty quote")
	}

	// Across a week the pick should vary at least once.
	varied := false
	for i := 1; i <= 7; i++ {
		if DailyQuote(day.AddDate(0, 0, i)) != q1 {
			varied = true
			break
		}
	}
	if !varied {
		t.Error("quote never varied across a week")
	}
}
