package model

import "time"

// EntryType categorizes a mindset journal entry.
type EntryType string

const (
	EntryBeforeTrade EntryType = "Before Trade"
	EntryAfterTrade  EntryType = "After Trade"
)

// JournalEntry is one mindset note, append-only.
type JournalEntry struct {
	Timestamp time.Time
	Type      EntryType
	Mood      string
	Text      string
}
