package entity

import "time"

type Message struct {
	ID             string     `json:"id" db:"id"`
	ConversationID string     `json:"conversation_id" db:"conversation_id"`
	SenderID       string     `json:"sender_id" db:"sender_id"`
	Text           string     `json:"message" db:"message"`
	Attachments    StringList `json:"attachments" db:"attachments"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

// ChatLine is a message as it is shown to a reader.
type ChatLine struct {
	Sender      string     `json:"sender"`
	Text        string     `json:"message"`
	Attachments StringList `json:"attachments,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
