package chat

import "errors"

var (
	// ErrEmptyMessage is returned when a message is empty or only whitespace
	ErrEmptyMessage = errors.New("message is empty")

	// ErrAssistantTyping is returned when a message is sent before the previous reply arrived
	ErrAssistantTyping = errors.New("assistant is still typing")

	// ErrInvalidReply is returned when a reply has no keywords or no text
	ErrInvalidReply = errors.New("invalid chat reply")
)
