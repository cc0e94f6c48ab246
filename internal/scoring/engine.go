package scoring

import (
	"github.com/shopspring/decimal"

	"github.com/jdeno416/tradebotx/internal/model"
)

// Result is the outcome of evaluating one answer snapshot against a
// question set. Same inputs always produce the same Result.
type Result struct {
	Score             float64
	Percentage        float64
	TotalYesWeight    float64
	CriticalTriggered bool
	Answered          int
}

// Evaluate recomputes score, percentage and critical flag from the complete
// answer snapshot. It never folds answers incrementally: a critical Yes
// anywhere in the set zeroes the score after all contributions are summed,
// regardless of answer order.
//
// TotalYesWeight sums WeightYes over every question in the set, answered or
// not, so the denominator is invariant under which questions are answered.
// The percentage is not clamped; author-defined weights may push it above 100
// or below 0.
func Evaluate(set *model.QuestionSet, answers map[int]model.Answer) Result {
	var res Result
	for i, q := range set.Questions {
		res.TotalYesWeight += q.WeightYes

		switch answers[i] {
		case model.Yes:
			res.Answered++
			if q.Critical {
				res.CriticalTriggered = true
			} else {
				res.Score += q.WeightYes
			}
		case model.No:
			res.Answered++
			res.Score += q.WeightNo
		}
	}

	if res.CriticalTriggered {
		res.Score = 0
	}
	res.Percentage = percentage(res.Score, res.TotalYesWeight)
	return res
}

// percentage returns score/total*100 rounded to 2 decimal places, or 0 when
// the denominator is 0 (empty set, or all WeightYes zero).
func percentage(score, totalYesWeight float64) float64 {
	if totalYesWeight == 0 {
		return 0
	}
	p := decimal.NewFromFloat(score).
		Div(decimal.NewFromFloat(totalYesWeight)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
	f, _ := p.Float64()
	return f
}

// AnsweredSnapshot returns the Yes/No-answered questions in index order, as
// they appear in a trade review record. Unanswered questions are excluded.
func AnsweredSnapshot(set *model.QuestionSet, answers map[int]model.Answer) []model.ReviewedAnswer {
	snap := make([]model.ReviewedAnswer, 0, len(answers))
	for i, q := range set.Questions {
		a := answers[i]
		if !a.Answered() {
			continue
		}
		snap = append(snap, model.ReviewedAnswer{
			Text:      q.Text,
			Answer:    a,
			WeightYes: q.WeightYes,
			WeightNo:  q.WeightNo,
			Critical:  q.Critical,
		})
	}
	return snap
}
