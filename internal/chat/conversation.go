package chat

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"healthassist/internal/models"
)

// DefaultTypingDelay is how long the assistant "types" before replying
const DefaultTypingDelay = time.Second

// ConversationConfig contains configuration for a conversation
type ConversationConfig struct {
	// TypingDelay is waited before each reply. Negative means no delay.
	TypingDelay time.Duration

	// Clock stamps messages. Nil means time.Now.
	Clock func() time.Time
}

// Conversation drives one chat session: it guards user input, simulates the
// assistant typing and appends both sides to the transcript.
type Conversation struct {
	responder  Responder
	transcript *Transcript
	delay      time.Duration
	typing     atomic.Bool
}

// NewConversation starts a conversation with the greeting already in the transcript
func NewConversation(responder Responder, config ConversationConfig) *Conversation {
	if config.TypingDelay == 0 {
		config.TypingDelay = DefaultTypingDelay
	}
	if config.TypingDelay < 0 {
		config.TypingDelay = 0
	}

	transcript := NewTranscript(config.Clock)
	transcript.Append(Greeting, models.OriginBot)

	return &Conversation{
		responder:  responder,
		transcript: transcript,
		delay:      config.TypingDelay,
	}
}

// Send appends the user's message, waits for the typing delay and appends
// the assistant's reply. Only one reply can be pending at a time.
func (c *Conversation) Send(ctx context.Context, text string) (models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}
	if !c.typing.CompareAndSwap(false, true) {
		return models.ChatMessage{}, ErrAssistantTyping
	}
	defer c.typing.Store(false)

	c.transcript.Append(text, models.OriginUser)

	if err := Wait(ctx, c.delay); err != nil {
		return models.ChatMessage{}, err
	}

	return c.transcript.Append(c.responder.Respond(text), models.OriginBot), nil
}

// IsTyping returns true while a reply is pending
func (c *Conversation) IsTyping() bool {
	return c.typing.Load()
}

// Messages returns the transcript so far
func (c *Conversation) Messages() []models.ChatMessage {
	return c.transcript.Messages()
}

// QuickQuestions returns the suggested first questions
func (c *Conversation) QuickQuestions() []string {
	return QuickQuestions()
}

// ShowQuickQuestions is true until the user has sent something
func (c *Conversation) ShowQuickQuestions() bool {
	return c.transcript.Len() <= 1
}

// Wait blocks for d or until ctx is done
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
