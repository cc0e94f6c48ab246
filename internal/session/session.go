package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jdeno416/tradebotx/internal/model"
	"github.com/jdeno416/tradebotx/internal/scoring"
)

// State is the lifecycle phase of an assessment run.
type State string

const (
	StateActive    State = "Active"
	StateAbandoned State = "Abandoned"
)

var (
	ErrNotActive     = errors.New("session is not active")
	ErrNoQuestions   = errors.New("question set has no answerable questions")
	ErrIndexRange    = errors.New("question index out of range")
	ErrNothingToSave = errors.New("no questions answered yet")
)

// Session is one run of a question set. It owns the answer snapshot and the
// live scoring result; every mutation goes through a method and re-invokes
// the scoring engine synchronously. The caller owns the session object —
// there is no implicit global state.
//
// Saving does not end or reset the session: the caller may keep adjusting
// answers and snapshot again, producing additional distinct records. Only
// Abandon is terminal.
type Session struct {
	ID        uuid.UUID
	set       *model.QuestionSet
	answers   map[int]model.Answer
	result    scoring.Result
	state     State
	startedAt time.Time
	saves     int
}

// Start begins an Active session over the given question set, with all
// answers reset to Unanswered and score and percentage at zero. It fails if
// no question has non-empty text.
func Start(set *model.QuestionSet) (*Session, error) {
	if set == nil || !set.HasAnswerable() {
		return nil, ErrNoQuestions
	}
	s := &Session{
		ID:        uuid.New(),
		set:       set,
		answers:   make(map[int]model.Answer, len(set.Questions)),
		state:     StateActive,
		startedAt: time.Now(),
	}
	s.result = scoring.Evaluate(s.set, s.answers)
	return s, nil
}

// Answer records the response for the question at idx and recomputes the
// live result from the full answer snapshot.
func (s *Session) Answer(idx int, a model.Answer) error {
	if s.state != StateActive {
		return ErrNotActive
	}
	if idx < 0 || idx >= len(s.set.Questions) {
		return fmt.Errorf("%w: %d of %d", ErrIndexRange, idx, len(s.set.Questions))
	}
	if a == model.Unanswered {
		delete(s.answers, idx)
	} else {
		s.answers[idx] = a
	}
	s.result = scoring.Evaluate(s.set, s.answers)
	return nil
}

// Snapshot produces a trade review record from the current answers, keyed by
// the current time. At least one question must be answered. The session stays
// answerable afterwards.
func (s *Session) Snapshot() (*model.TradeReviewRecord, error) {
	if s.state != StateActive {
		return nil, ErrNotActive
	}
	if s.result.Answered == 0 {
		return nil, ErrNothingToSave
	}
	s.saves++
	return &model.TradeReviewRecord{
		Timestamp:  time.Now(),
		Assessment: s.set.Name,
		Score:      s.result.Score,
		Percentage: s.result.Percentage,
		Answers:    scoring.AnsweredSnapshot(s.set, s.answers),
		Outcome:    model.OutcomePending,
	}, nil
}

// Abandon discards the session. No partial state is persisted anywhere.
func (s *Session) Abandon() {
	s.state = StateAbandoned
	s.answers = nil
}

// Result returns the live scoring result.
func (s *Session) Result() scoring.Result { return s.result }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Set returns the question set this session runs over.
func (s *Session) Set() *model.QuestionSet { return s.set }

// AnswerFor returns the recorded answer for the question at idx.
func (s *Session) AnswerFor(idx int) model.Answer {
	if a, ok := s.answers[idx]; ok {
		return a
	}
	return model.Unanswered
}

// Saves returns how many records this session has produced so far.
func (s *Session) Saves() int { return s.saves }
