package chat

import (
	"sync"
	"time"

	"healthassist/internal/models"
)

// Transcript is the append-only message history of one conversation
type Transcript struct {
	mu       sync.RWMutex
	messages []models.ChatMessage
	nextID   int64
	now      func() time.Time
}

// NewTranscript creates an empty transcript. A nil clock means time.Now.
func NewTranscript(now func() time.Time) *Transcript {
	if now == nil {
		now = time.Now
	}
	return &Transcript{nextID: 1, now: now}
}

// Append records a message and returns it with its ID and timestamp set
func (t *Transcript) Append(text string, origin models.Origin) models.ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()

	msg := models.ChatMessage{
		ID:        t.nextID,
		Text:      text,
		Origin:    origin,
		CreatedAt: t.now(),
	}
	t.nextID++
	t.messages = append(t.messages, msg)

	return msg
}

// Messages returns a copy of the messages in the order they were appended
func (t *Transcript) Messages() []models.ChatMessage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]models.ChatMessage, len(t.messages))
	copy(result, t.messages)

	return result
}

// Len returns the number of messages
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}
