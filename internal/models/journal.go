package models

// JournalEntry is one journaling session: what the user said, what the
// companion answered and the caller's own labels for it.
type JournalEntry struct {
	ID         string         `json:"id" db:"id"`
	Date       string         `json:"date" db:"date"`
	Time       string         `json:"time" db:"time"`
	Transcript string         `json:"transcript" db:"transcript"`
	Response   string         `json:"response" db:"response"`
	Sentiment  string         `json:"sentiment" db:"sentiment"`
	Mood       int            `json:"mood" db:"mood"`
	Feedback   map[string]any `json:"feedback" db:"feedback"`
}
