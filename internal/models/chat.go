package models

import "time"

// Origin identifies who authored a chat message
type Origin string

const (
	OriginUser Origin = "user"
	OriginBot  Origin = "bot"
)

// ChatMessage is one entry of a conversation transcript. Messages are never
// modified once appended.
type ChatMessage struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Origin    Origin    `json:"origin"`
	CreatedAt time.Time `json:"created_at"`
}

// IsBot returns true if the assistant wrote the message
func (m ChatMessage) IsBot() bool {
	return m.Origin == OriginBot
}
