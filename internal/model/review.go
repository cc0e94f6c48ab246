package model

import "time"

// Outcome is the post-hoc verdict attached to a saved review.
type Outcome string

const (
	OutcomePending    Outcome = "Pending"
	OutcomeWorked     Outcome = "Worked"
	OutcomeDidNotWork Outcome = "DidNotWork"
)

// ValidOutcome reports whether o is one of the known outcome values.
func ValidOutcome(o Outcome) bool {
	switch o {
	case OutcomePending, OutcomeWorked, OutcomeDidNotWork:
		return true
	}
	return false
}

// ReviewedAnswer is the snapshot of one answered question inside a review
// record. Unanswered questions never appear here.
type ReviewedAnswer struct {
	Text      string  `json:"question"`
	Answer    Answer  `json:"answer"`
	WeightYes float64 `json:"weight_yes"`
	WeightNo  float64 `json:"weight_no"`
	Critical  bool    `json:"critical"`
}

// TradeReviewRecord is an immutable snapshot of a saved assessment run,
// keyed by save time. Outcome is the only field mutable after creation.
type TradeReviewRecord struct {
	Timestamp  time.Time
	Assessment string
	Score      float64
	Percentage float64
	Answers    []ReviewedAnswer
	Outcome    Outcome
}
