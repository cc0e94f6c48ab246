package session

import (
	"errors"
	"testing"

	"github.com/jdeno416/tradebotx/internal/model"
)

func testSet() *model.QuestionSet {
	return &model.QuestionSet{
		Name: "pre-trade",
		Questions: []model.Question{
			{Text: "Trend confirmed?", WeightYes: 10, WeightNo: -10},
			{Text: "Revenge trading?", WeightYes: 20, WeightNo: -5, Critical: true},
		},
	}
}

func TestStart_RequiresAnswerableQuestion(t *testing.T) {
	if _, err := Start(&model.QuestionSet{Name: "empty"}); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("empty set: expected ErrNoQuestions, got %v", err)
	}
	if _, err := Start(&model.QuestionSet{
		Questions: []model.Question{{Text: "", WeightYes: 10}},
	}); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("blank text: expected ErrNoQuestions, got %v", err)
	}

	s, err := Start(testSet())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.State() != StateActive {
		t.Errorf("expected Active state, got %s", s.State())
	}
	if r := s.Result(); r.Score != 0 || r.Percentage != 0 || r.Answered != 0 {
		t.Errorf("fresh session must start at zero, got %+v", r)
	}
}

func TestAnswer_RecomputesLiveResult(t *testing.T) {
	s, _ := Start(testSet())

	if err := s.Answer(0, model.Yes); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if r := s.Result(); r.Score != 10 || r.Percentage != 33.33 {
		t.Errorf("after Q1=Yes: got %+v", r)
	}

	if err := s.Answer(1, model.No); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if r := s.Result(); r.Score != 5 || r.Percentage != 16.67 {
		t.Errorf("after Q2=No: got %+v", r)
	}

	// Flip Q2 to a critical Yes; recompute must zero the score.
	if err := s.Answer(1, model.Yes); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if r := s.Result(); r.Score != 0 || !r.CriticalTriggered {
		t.Errorf("critical yes: got %+v", r)
	}

	// Back to Unanswered; the contribution disappears.
	if err := s.Answer(1, model.Unanswered); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if r := s.Result(); r.Score != 10 || r.CriticalTriggered || r.Answered != 1 {
		t.Errorf("after retracting Q2: got %+v", r)
	}
}

func TestAnswer_IndexOutOfRange(t *testing.T) {
	s, _ := Start(testSet())
	if err := s.Answer(5, model.Yes); !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected ErrIndexRange, got %v", err)
	}
	if err := s.Answer(-1, model.Yes); !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected ErrIndexRange, got %v", err)
	}
}

func TestSnapshot_RequiresAnAnswer(t *testing.T) {
	s, _ := Start(testSet())
	if _, err := s.Snapshot(); !errors.Is(err, ErrNothingToSave) {
		t.Errorf("expected ErrNothingToSave, got %v", err)
	}
}

func TestSnapshot_RepeatSavesProduceDistinctRecords(t *testing.T) {
	s, _ := Start(testSet())
	_ = s.Answer(0, model.Yes)

	first, err := s.Snapshot()
	if err != nil {
		t.Fatalf("first snapshot: %v", err)
	}
	if first.Assessment != "pre-trade" || first.Score != 10 || first.Outcome != model.OutcomePending {
		t.Errorf("unexpected first record: %+v", first)
	}
	if len(first.Answers) != 1 {
		t.Fatalf("expected 1 answered question, got %d", len(first.Answers))
	}

	// Session stays answerable; a second save reflects the adjusted answers.
	_ = s.Answer(1, model.No)
	second, err := s.Snapshot()
	if err != nil {
		t.Fatalf("second snapshot: %v", err)
	}
	if second.Score != 5 || len(second.Answers) != 2 {
		t.Errorf("unexpected second record: %+v", second)
	}
	if first.Score == second.Score {
		t.Error("records should be independent snapshots")
	}
	if s.Saves() != 2 {
		t.Errorf("expected 2 saves, got %d", s.Saves())
	}
}

func TestAbandon_IsTerminal(t *testing.T) {
	s, _ := Start(testSet())
	_ = s.Answer(0, model.Yes)
	s.Abandon()

	if s.State() != StateAbandoned {
		t.Fatalf("expected Abandoned, got %s", s.State())
	}
	if err := s.Answer(0, model.No); !errors.Is(err, ErrNotActive) {
		t.Errorf("answer after abandon: expected ErrNotActive, got %v", err)
	}
	if _, err := s.Snapshot(); !errors.Is(err, ErrNotActive) {
		t.Errorf("snapshot after abandon: expected ErrNotActive, got %v", err)
	}
}
