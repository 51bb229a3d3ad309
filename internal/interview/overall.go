package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ai-interviewer/internal/ai"
	"ai-interviewer/internal/logger"

	"go.uber.org/zap"
)

// reportTurns is how many recent turns feed the overall-analysis prompt.
const reportTurns = 5

// OverallAnalyzer aggregates the full transcript into the final report.
// Like the per-turn analyzer it never fails: any backend problem yields a
// deterministic report computed from the turn statistics.
type OverallAnalyzer struct {
	backend ai.Generator
	enabled bool
	logger  *zap.Logger
}

func NewOverallAnalyzer(backend ai.Generator, aiEnabled bool, log *zap.Logger) *OverallAnalyzer {
	return &OverallAnalyzer{
		backend: backend,
		enabled: aiEnabled && backend != nil,
		logger:  logger.WithFields(log),
	}
}

// Report builds the final performance report. The aggregate score is always
// the arithmetic mean of the turn scores; the backend contributes narrative
// only.
func (o *OverallAnalyzer) Report(ctx context.Context, s *Session) *OverallReport {
	aggregate := clampScore(s.AverageScore())

	if !o.enabled || len(s.Turns) == 0 {
		return computedReport(s, aggregate)
	}

	raw, err := o.backend.GenerateContent(ctx, buildReportPrompt(s))
	if err != nil {
		o.logger.Warn("overall analysis failed, using computed report",
			zap.String("reason", string(ai.ReasonOf(err))),
			zap.Error(err),
		)
		return computedReport(s, aggregate)
	}

	report, err := parseReport(raw, aggregate)
	if err != nil {
		o.logger.Warn("malformed overall analysis payload, using computed report",
			zap.Error(err),
			zap.String("payload_preview", logger.TruncateForLog(raw, 200)),
		)
		return computedReport(s, aggregate)
	}

	return report
}

func buildReportPrompt(s *Session) string {
	recent := s.Turns
	if len(recent) > reportTurns {
		recent = recent[len(recent)-reportTurns:]
	}

	var history []string
	for _, turn := range recent {
		history = append(history, fmt.Sprintf("Q: %s\nA: %s\nScore: %d", turn.Question, turn.Answer, turn.Analysis.Score))
	}

	return fmt.Sprintf(
		"Analyze this complete interview performance for a %s position:\n\n"+
			"Candidate: %s\n"+
			"Interview Type: %s\n"+
			"Questions Answered: %d\n\n"+
			"Recent Q&A History:\n%s\n\n"+
			"Provide comprehensive analysis in JSON format:\n"+
			"{\n"+
			`    "overall_score": score_out_of_10,`+"\n"+
			`    "summary": "Overall performance summary (3-4 sentences)",`+"\n"+
			`    "top_strengths": ["strength1", "strength2", "strength3"],`+"\n"+
			`    "areas_for_improvement": ["area1", "area2", "area3"],`+"\n"+
			`    "specific_recommendations": ["rec1", "rec2", "rec3"],`+"\n"+
			`    "interview_readiness": "Ready/Needs Practice/Needs Significant Work",`+"\n"+
			`    "next_steps": ["step1", "step2"]`+"\n"+
			"}\n\n"+
			"Be honest but encouraging. Focus on actionable feedback.",
		s.Position, s.Candidate, s.Category, len(s.Turns), strings.Join(history, "\n"),
	)
}

func parseReport(raw string, aggregate float64) (*OverallReport, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse overall analysis response: %w", err)
	}

	summary := coerceString(data["summary"])
	if summary == "" {
		summary = fmt.Sprintf("Interview completed with an average score of %.1f/10.", aggregate)
	}

	readiness, ok := ParseReadiness(coerceString(data["interview_readiness"]))
	if !ok {
		readiness = ReadinessForScore(aggregate)
	}

	return &OverallReport{
		Score:           aggregate,
		Summary:         summary,
		TopStrengths:    coerceStringList(data["top_strengths"]),
		Improvements:    coerceStringList(data["areas_for_improvement"]),
		Recommendations: coerceStringList(data["specific_recommendations"]),
		Readiness:       readiness,
		NextSteps:       coerceStringList(data["next_steps"]),
	}, nil
}

// computedReport derives the report deterministically from the turn record.
// Strengths and improvements are collected from the per-turn analyses.
func computedReport(s *Session, aggregate float64) *OverallReport {
	summary := "Interview completed successfully!"
	if len(s.Turns) > 0 {
		summary = fmt.Sprintf(
			"You answered %d questions with an average score of %.1f/10. "+
				"Keep practicing to make your answers more specific and measurable.",
			len(s.Turns), aggregate,
		)
	}

	return &OverallReport{
		Score:           aggregate,
		Summary:         summary,
		TopStrengths:    collectUnique(s, func(a *Analysis) []string { return a.Strengths }),
		Improvements:    collectUnique(s, func(a *Analysis) []string { return a.Improvements }),
		Recommendations: []string{"Practice structuring answers with the STAR method", "Rehearse with a timer to keep responses focused"},
		Readiness:       ReadinessForScore(aggregate),
		NextSteps:       []string{"Review the per-question feedback in this report", "Schedule another practice session"},
	}
}

const maxReportItems = 3

func collectUnique(s *Session, pick func(*Analysis) []string) []string {
	seen := make(map[string]struct{})
	items := make([]string, 0, maxReportItems)

	for _, turn := range s.Turns {
		for _, item := range pick(turn.Analysis) {
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			items = append(items, item)
			if len(items) == maxReportItems {
				return items
			}
		}
	}

	return items
}
