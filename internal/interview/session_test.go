package interview

import (
	"testing"
	"time"
)

func TestAverageScoreWithoutTurns(t *testing.T) {
	s := testSession(CategoryGeneral, 10)

	if got := s.AverageScore(); got != 0 {
		t.Fatalf("expected 0 for empty session, got %v", got)
	}
	if got := s.AverageResponseTime(); got != 0 {
		t.Fatalf("expected 0 response time for empty session, got %v", got)
	}
}

func TestAverageScoreAndResponseTime(t *testing.T) {
	s := testSession(CategoryGeneral, 10)
	s.AddTurn(&Turn{Analysis: &Analysis{Score: 6}, ResponseTime: 10 * time.Second})
	s.AddTurn(&Turn{Analysis: &Analysis{Score: 9}, ResponseTime: 20 * time.Second})

	if got := s.AverageScore(); got != 7.5 {
		t.Fatalf("expected average 7.5, got %v", got)
	}
	if got := s.TotalResponseTime(); got != 30*time.Second {
		t.Fatalf("expected total 30s, got %v", got)
	}
	if got := s.AverageResponseTime(); got != 15*time.Second {
		t.Fatalf("expected average 15s, got %v", got)
	}
}

func TestQuestionHistoryDeduplicates(t *testing.T) {
	history := NewQuestionHistory()

	history.Add("What motivates you?")
	history.Add("What motivates you?")
	history.Add("Describe a hard bug.")

	if history.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", history.Len())
	}
	if !history.Contains("What motivates you?") {
		t.Fatalf("expected history to contain the question")
	}
	if history.Contains("Never asked") {
		t.Fatalf("did not expect unknown question")
	}

	asked := history.Asked()
	if len(asked) != 2 || asked[0] != "What motivates you?" || asked[1] != "Describe a hard bug." {
		t.Fatalf("unexpected order: %v", asked)
	}
}

func TestParseReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Readiness
		ok    bool
	}{
		{input: "Ready", want: ReadinessReady, ok: true},
		{input: "  needs practice ", want: ReadinessNeedsPractice, ok: true},
		{input: "NEEDS SIGNIFICANT WORK", want: ReadinessNeedsWork, ok: true},
		{input: "Assessment Complete", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		got, ok := ParseReadiness(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("ParseReadiness(%q) = (%q, %v), expected (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestReadinessForScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  Readiness
	}{
		{score: 9, want: ReadinessReady},
		{score: 7.5, want: ReadinessReady},
		{score: 7.4, want: ReadinessNeedsPractice},
		{score: 5, want: ReadinessNeedsPractice},
		{score: 4.9, want: ReadinessNeedsWork},
		{score: 0, want: ReadinessNeedsWork},
	}

	for _, tt := range tests {
		if got := ReadinessForScore(tt.score); got != tt.want {
			t.Fatalf("ReadinessForScore(%v) = %q, expected %q", tt.score, got, tt.want)
		}
	}
}
