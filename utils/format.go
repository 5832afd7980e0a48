package utils

import (
	"strings"

	"github.com/kkh0343-create/campus-pairing/models"
)

// JoinMemberNames renders a group's member names for display
// (appointment cards, chat headers).
func JoinMemberNames(members []models.GroupMember) string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	return strings.Join(names, ", ")
}

// Truncate shortens long text for log lines.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
