package interview

import (
	"context"
	"testing"

	"ai-interviewer/internal/ai"

	"go.uber.org/zap"
)

func sessionWithScores(scores ...int) *Session {
	s := testSession(CategoryBehavioral, 10)
	for _, score := range scores {
		s.AddTurn(&Turn{
			Question: "q",
			Answer:   "a",
			Analysis: &Analysis{
				Score:        score,
				Strengths:    []string{"Clear communication"},
				Improvements: []string{"Add metrics"},
			},
		})
	}
	return s
}

func TestReportWithoutTurns(t *testing.T) {
	o := NewOverallAnalyzer(ai.Absent(), false, zap.NewNop())

	report := o.Report(context.Background(), testSession(CategoryGeneral, 10))

	if report == nil {
		t.Fatal("expected a report")
	}
	if report.Score != 0 {
		t.Fatalf("expected score 0, got %v", report.Score)
	}
	if report.Summary == "" {
		t.Fatalf("expected non-empty summary")
	}
	if report.Readiness != ReadinessNeedsWork {
		t.Fatalf("unexpected readiness: %q", report.Readiness)
	}
}

func TestComputedReportAggregatesTurnScores(t *testing.T) {
	o := NewOverallAnalyzer(ai.Absent(), false, zap.NewNop())
	s := sessionWithScores(8, 9)

	report := o.Report(context.Background(), s)

	if report.Score != 8.5 {
		t.Fatalf("expected mean 8.5, got %v", report.Score)
	}
	if report.Readiness != ReadinessReady {
		t.Fatalf("unexpected readiness: %q", report.Readiness)
	}
	if len(report.TopStrengths) == 0 {
		t.Fatalf("expected strengths collected from turns")
	}
}

func TestReportUsesBackendNarrative(t *testing.T) {
	stub := &stubGenerator{queue: []stubResult{{
		text: `{"overall_score": 3, "summary": "Strong storytelling throughout.", ` +
			`"top_strengths": ["Storytelling"], "areas_for_improvement": ["Brevity"], ` +
			`"specific_recommendations": ["Practice concise answers"], ` +
			`"interview_readiness": "Needs Practice", "next_steps": ["Mock interview"]}`,
	}}}
	o := NewOverallAnalyzer(stub, true, zap.NewNop())
	s := sessionWithScores(6, 6)

	report := o.Report(context.Background(), s)

	// The aggregate is always the mean of turn scores; the model contributes
	// narrative only.
	if report.Score != 6 {
		t.Fatalf("expected aggregate 6, got %v", report.Score)
	}
	if report.Summary != "Strong storytelling throughout." {
		t.Fatalf("unexpected summary: %q", report.Summary)
	}
	if report.Readiness != ReadinessNeedsPractice {
		t.Fatalf("unexpected readiness: %q", report.Readiness)
	}
	if len(report.NextSteps) != 1 || report.NextSteps[0] != "Mock interview" {
		t.Fatalf("unexpected next steps: %v", report.NextSteps)
	}
}

func TestReportFallsBackOnMalformedPayload(t *testing.T) {
	stub := &stubGenerator{queue: []stubResult{{text: "not json"}}}
	o := NewOverallAnalyzer(stub, true, zap.NewNop())
	s := sessionWithScores(4)

	report := o.Report(context.Background(), s)

	if report.Score != 4 {
		t.Fatalf("expected computed mean 4, got %v", report.Score)
	}
	if report.Summary == "" {
		t.Fatalf("expected non-empty computed summary")
	}
	if report.Readiness != ReadinessNeedsWork {
		t.Fatalf("unexpected readiness: %q", report.Readiness)
	}
}

func TestReportDerivesReadinessFromUnknownVerdict(t *testing.T) {
	stub := &stubGenerator{queue: []stubResult{{
		text: `{"summary": "Fine.", "interview_readiness": "Probably fine?"}`,
	}}}
	o := NewOverallAnalyzer(stub, true, zap.NewNop())
	s := sessionWithScores(9, 9)

	report := o.Report(context.Background(), s)

	if report.Readiness != ReadinessReady {
		t.Fatalf("expected readiness derived from score, got %q", report.Readiness)
	}
}
