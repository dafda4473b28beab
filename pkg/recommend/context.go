package recommend

import (
	"strings"
)

// Turn is one prior conversation turn, caller-supplied and never mutated.
type Turn struct {
	Role    string // "user" | "assistant"
	Content string
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// AggregateContext merges every prior user turn plus the current message into
// one search context string. The resent history is the only state carrier:
// slots and intent are re-derived from this string on every request.
func AggregateContext(message string, history []Turn) string {
	parts := make([]string, 0, len(history)+1)
	for _, turn := range history {
		if turn.Role != RoleUser {
			continue
		}
		if turn.Content == "" {
			continue
		}
		parts = append(parts, turn.Content)
	}
	parts = append(parts, message)
	return strings.TrimSpace(strings.Join(parts, " "))
}
