package model

// Answer is the response state of a single checklist question.
type Answer string

const (
	Unanswered Answer = "Unanswered"
	Yes        Answer = "Yes"
	No         Answer = "No"
)

// Answered reports whether the answer is a committed Yes or No.
func (a Answer) Answered() bool { return a == Yes || a == No }

// Question is one weighted checklist item.
// WeightYes is added on Yes unless the question is critical, in which case a
// Yes zeroes the whole session score. WeightNo (usually non-positive) is added
// on No regardless of criticality. WeightYes always counts toward the
// percentage denominator, answered or not.
type Question struct {
	Text      string  `json:"question"`
	WeightYes float64 `json:"weight_yes"`
	WeightNo  float64 `json:"weight_no"`
	Critical  bool    `json:"critical"`
}

// QuestionSet is a named, ordered checklist template.
type QuestionSet struct {
	Name      string
	Questions []Question
}

// HasAnswerable reports whether at least one question has non-empty text,
// the minimum required to start an assessment run.
func (qs *QuestionSet) HasAnswerable() bool {
	for _, q := range qs.Questions {
		if q.Text != "" {
			return true
		}
	}
	return false
}
