package entity

import "time"

// Conversation is a two-party chat. Participant1 < Participant2 always.
type Conversation struct {
	ID           string    `json:"id" db:"id"`
	Participant1 string    `json:"participant_1" db:"participant_1"`
	Participant2 string    `json:"participant_2" db:"participant_2"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// ConversationSummary is one row of a user's conversation list.
type ConversationSummary struct {
	ID            string `json:"id"`
	CounterpartID string `json:"counterpart_id"`
	Counterpart   string `json:"counterpart"`
}

// CanonicalPair orders two user ids so that the same pair always maps to
// the same (participant_1, participant_2) row.
func CanonicalPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}
