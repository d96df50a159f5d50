package tui

import (
	"strings"
	"testing"
)

func TestEditRune(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  string
		want string
	}{
		{"append letter", "abc", "d", "abcd"},
		{"append unicode", "caf", "é", "café"},
		{"backspace", "abc", "backspace", "ab"},
		{"backspace unicode", "café", "backspace", "caf"},
		{"backspace empty", "", "backspace", ""},
		{"ignore enter", "abc", "enter", "abc"},
		{"ignore ctrl", "abc", "ctrl+c", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := editRune(tt.text, tt.key); got != tt.want {
				t.Errorf("editRune(%q, %q) = %q, want %q", tt.text, tt.key, got, tt.want)
			}
		})
	}
}

func TestEditRuneClampsLength(t *testing.T) {
	text := strings.Repeat("a", maxInputLen)
	if got := editRune(text, "b"); got != text {
		t.Fatal("input should not grow past maxInputLen")
	}
}

func TestEditNumeric(t *testing.T) {
	tests := []struct {
		text string
		key  string
		want string
	}{
		{"12", "3", "123"},
		{"12", ".", "12."},
		{"12", "x", "12"},
		{"12", "backspace", "1"},
	}
	for _, tt := range tests {
		if got := editNumeric(tt.text, tt.key); got != tt.want {
			t.Errorf("editNumeric(%q, %q) = %q, want %q", tt.text, tt.key, got, tt.want)
		}
	}
}

func TestTruncateToHeight(t *testing.T) {
	s := "a\nb\nc\nd\n"
	if got := truncateToHeight(s, 2); got != "a\nb\n" {
		t.Errorf("got %q, want %q", got, "a\nb\n")
	}
	if got := truncateToHeight(s, 10); got != s {
		t.Errorf("got %q, want input unchanged", got)
	}
	if got := truncateToHeight(s, 0); got != s {
		t.Errorf("maxLines <= 0 should return input unchanged, got %q", got)
	}
}

func TestTruncStr(t *testing.T) {
	if got := truncStr("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	got := truncStr("a very long service name", 10)
	if len([]rune(got)) != 10 {
		t.Errorf("truncated to %d runes, want 10", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
}
