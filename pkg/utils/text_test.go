package utils

import "testing"

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Lowercases", input: "Jakarta", want: "jakarta"},
		{name: "Trims", input: "  jakarta ", want: "jakarta"},
		{name: "Collapses inner whitespace", input: "thomas   edison", want: "thomas edison"},
		{name: "Tabs and newlines", input: "thomas\tedison\n", want: "thomas edison"},
		{name: "Empty", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAnswer(tt.input); got != tt.want {
				t.Errorf("NormalizeAnswer(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("alice", "Alice"); got != "alice" {
		t.Errorf("DisplayName() = %q, want username preferred", got)
	}
	if got := DisplayName("", "Budi"); got != "Budi" {
		t.Errorf("DisplayName() = %q, want first name fallback", got)
	}
}
