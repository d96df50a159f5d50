package browser

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"chezmarie.fr", "https://chezmarie.fr"},
		{"  chezmarie.fr  ", "https://chezmarie.fr"},
		{"http://chezmarie.fr", "http://chezmarie.fr"},
		{"https://chezmarie.fr/book", "https://chezmarie.fr/book"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := normalize(tt.in); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpenEmptyAddress(t *testing.T) {
	if err := Open("   "); err == nil {
		t.Fatal("expected error for empty address")
	}
}
