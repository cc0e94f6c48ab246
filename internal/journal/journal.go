// Package journal stores mindset notes written before and after trades.
package journal

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jdeno416/tradebotx/internal/model"
)

// Filter narrows a journal listing. Zero values match everything.
type Filter struct {
	Mood string
	Type model.EntryType
}

// Store is the append-only SQLite journal archive.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// NewStore opens (or creates) the journal database.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &Store{db: db}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS journal_entries (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp  INTEGER NOT NULL,
		entry_type TEXT NOT NULL,
		mood       TEXT NOT NULL,
		text       TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] journal store opened: %s", dbPath)
	return s, nil
}

// Append records one entry. Blank text is rejected; there is no edit or
// delete.
func (s *Store) Append(e *model.JournalEntry) error {
	if e.Text == "" {
		return fmt.Errorf("journal entry text is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO journal_entries (timestamp, entry_type, mood, text)
		VALUES (?,?,?,?)`,
		e.Timestamp.Unix(), string(e.Type), e.Mood, e.Text)
	return err
}

// List returns entries matching the filter, most recent first.
func (s *Store) List(f Filter) ([]model.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `SELECT timestamp, entry_type, mood, text FROM journal_entries WHERE 1=1`
	var args []any
	if f.Mood != "" {
		query += ` AND mood = ?`
		args = append(args, f.Mood)
	}
	if f.Type != "" {
		query += ` AND entry_type = ?`
		args = append(args, string(f.Type))
	}
	query += ` ORDER BY timestamp DESC, id DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.JournalEntry
	for rows.Next() {
		var (
			ts        int64
			entryType string
			e         model.JournalEntry
		)
		if err := rows.Scan(&ts, &entryType, &e.Mood, &e.Text); err != nil {
			return nil, err
		}
		e.Timestamp = time.Unix(ts, 0)
		e.Type = model.EntryType(entryType)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Moods returns the distinct moods seen so far, for building filter menus.
func (s *Store) Moods() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT DISTINCT mood FROM journal_entries ORDER BY mood`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var moods []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}
		moods = append(moods, m)
	}
	return moods, rows.Err()
}

func (s *Store) Close() error {
	log.Println("[INFO] closing journal store")
	return s.db.Close()
}
