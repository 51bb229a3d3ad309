package logger

import "testing"

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{name: "short string untouched", input: "hello", limit: 10, want: "hello"},
		{name: "exact limit untouched", input: "hello", limit: 5, want: "hello"},
		{name: "long string truncated", input: "hello world", limit: 5, want: "hello..."},
		{name: "surrounding space trimmed", input: "  hello  ", limit: 10, want: "hello"},
		{name: "multibyte runes counted", input: "привет мир", limit: 6, want: "привет..."},
		{name: "zero limit", input: "hello", limit: 0, want: ""},
		{name: "negative limit", input: "hello", limit: -1, want: ""},
		{name: "empty input", input: "", limit: 5, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TruncateForLog(tt.input, tt.limit); got != tt.want {
				t.Fatalf("TruncateForLog(%q, %d) = %q, expected %q", tt.input, tt.limit, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	for _, json := range []bool{true, false} {
		for _, debug := range []bool{true, false} {
			log, err := New(json, debug)
			if err != nil {
				t.Fatalf("New(%v, %v) returned error: %v", json, debug, err)
			}
			if log == nil {
				t.Fatalf("New(%v, %v) returned nil logger", json, debug)
			}
		}
	}
}
