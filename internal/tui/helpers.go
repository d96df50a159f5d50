package tui

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/velourhq/velour/pkg/client"
)

// formatTime renders a relative timestamp for list displays.
func formatTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// truncStr truncates a string to maxLen runes, appending an ellipsis if needed.
func truncStr(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + "…"
}

// errText turns an error into the short, category-aware line shown on
// screens. Screens catch every error; none are fatal.
func errText(err error) string {
	if err == nil {
		return ""
	}
	switch client.KindOf(err) {
	case client.KindNetwork:
		return "network error — check your connection and retry"
	case client.KindAuth:
		return "not signed in — please log in again"
	case client.KindConflict:
		return "already registered — try logging in instead"
	case client.KindExpiredCode:
		return "code expired — request a new one"
	case client.KindInvalidCode:
		return "that code doesn't match — check and retry"
	default:
		return err.Error()
	}
}
