package review

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jdeno416/tradebotx/internal/model"
)

// SQLiteStore persists trade reviews to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] review store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS trade_reviews (
			timestamp  INTEGER PRIMARY KEY,
			assessment TEXT NOT NULL,
			score      REAL NOT NULL,
			percentage REAL NOT NULL,
			answers    TEXT NOT NULL,
			outcome    TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// Append inserts a record keyed by its save time, truncated to seconds.
// A second save within the same second silently replaces the first.
func (s *SQLiteStore) Append(rec *model.TradeReviewRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	answers, err := json.Marshal(rec.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	_, err = s.db.Exec(`INSERT OR REPLACE INTO trade_reviews
		(timestamp, assessment, score, percentage, answers, outcome)
		VALUES (?,?,?,?,?,?)`,
		rec.Timestamp.Unix(), rec.Assessment, rec.Score, rec.Percentage,
		string(answers), string(rec.Outcome),
	)
	return err
}

// UpdateOutcome mutates only the outcome column of the record at key.
func (s *SQLiteStore) UpdateOutcome(key time.Time, outcome model.Outcome) error {
	if !model.ValidOutcome(outcome) {
		return fmt.Errorf("invalid outcome %q", outcome)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`UPDATE trade_reviews SET outcome = ? WHERE timestamp = ?`,
		string(outcome), key.Unix())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, key.Format(time.DateTime))
	}
	return nil
}

// ListAll returns all records, most recent first.
func (s *SQLiteStore) ListAll() ([]model.TradeReviewRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT timestamp, assessment, score, percentage, answers, outcome
		FROM trade_reviews ORDER BY timestamp DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.TradeReviewRecord
	for rows.Next() {
		var (
			ts          int64
			rec         model.TradeReviewRecord
			answersJSON string
			outcome     string
		)
		if err := rows.Scan(&ts, &rec.Assessment, &rec.Score, &rec.Percentage, &answersJSON, &outcome); err != nil {
			return nil, err
		}
		rec.Timestamp = time.Unix(ts, 0)
		rec.Outcome = model.Outcome(outcome)
		if err := json.Unmarshal([]byte(answersJSON), &rec.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal answers at %d: %w", ts, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing review store")
	return s.db.Close()
}
