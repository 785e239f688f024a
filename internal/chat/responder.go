// Package chat implements the health assistant's keyword replies and the
// conversation transcript they are appended to.
package chat

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"healthassist/internal/keyword"
)

// Responder maps a chat message to exactly one reply
type Responder interface {
	Respond(message string) string
}

// Reply is sent when any of its keywords appears in the message
type Reply struct {
	Keywords []string
	Text     string
}

// ResponderConfig contains configuration options for the responder
type ResponderConfig struct {
	// Replies are tested in order and the first match wins. Empty means DefaultReplies.
	Replies []Reply

	// Fallback is sent when nothing matches. Empty means DefaultFallbackReply.
	Fallback string
}

// RuleBasedResponder answers with the first reply whose keywords match
type RuleBasedResponder struct {
	replies  []Reply
	fallback string
	matcher  *keyword.Matcher
}

// NewRuleBasedResponder creates a new rule-based responder
func NewRuleBasedResponder(config ResponderConfig) (*RuleBasedResponder, error) {
	if len(config.Replies) == 0 {
		config.Replies = DefaultReplies()
	}
	if strings.TrimSpace(config.Fallback) == "" {
		config.Fallback = DefaultFallbackReply
	}

	for i, reply := range config.Replies {
		if len(reply.Keywords) == 0 || strings.TrimSpace(reply.Text) == "" {
			return nil, fmt.Errorf("%w: reply %d", ErrInvalidReply, i)
		}
	}

	matcher, err := keyword.NewMatcher(lo.FlatMap(config.Replies, func(r Reply, _ int) []string {
		return r.Keywords
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to create reply matcher: %w", err)
	}

	return &RuleBasedResponder{
		replies:  append([]Reply(nil), config.Replies...),
		fallback: config.Fallback,
		matcher:  matcher,
	}, nil
}

// Respond implements the Responder interface
func (r *RuleBasedResponder) Respond(message string) string {
	hits := r.matcher.Hits(message)

	reply, found := lo.Find(r.replies, func(reply Reply) bool {
		return hits.Any(reply.Keywords...)
	})
	if !found {
		return r.fallback
	}

	return reply.Text
}
