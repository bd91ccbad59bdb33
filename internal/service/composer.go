package service

import (
	"strings"

	"unibridge.app/compass/internal/model"
)

// ComposeReply flattens a triage decision into a single displayable
// message: the response followed by bullet-formatted follow-up
// prompts, separated by blank lines. Pure formatting; empty parts are
// skipped.
func ComposeReply(decision model.TriageDecision) string {
	parts := make([]string, 0, 1+len(decision.FollowUps))
	if response := strings.TrimSpace(decision.Response); response != "" {
		parts = append(parts, response)
	}
	for _, followUp := range decision.FollowUps {
		if followUp = strings.TrimSpace(followUp); followUp != "" {
			parts = append(parts, "• "+followUp)
		}
	}
	return strings.Join(parts, "\n\n")
}
