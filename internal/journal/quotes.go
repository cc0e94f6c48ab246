package journal

import (
	"math/rand"
	"time"
)

var calmQuotes = []string{
	"Breathe. Patience is profit.",
	"Detach from the outcome. Execute the plan.",
	"Emotions are signals, not commands.",
	"Clarity over chaos. Trust your setup.",
	"Discipline builds freedom.",
	"You're not your PnL. You're your process.",
	"Every trade is a lesson. Be the student.",
}

// DailyQuote returns the calm quote for the given day. The pick is seeded by
// the date so the quote is stable for a whole day and changes overnight.
func DailyQuote(t time.Time) string {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(day.Unix() / 86400))
	return calmQuotes[rng.Intn(len(calmQuotes))]
}
