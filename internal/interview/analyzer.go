package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"ai-interviewer/internal/ai"
	"ai-interviewer/internal/logger"

	"go.uber.org/zap"
)

// ResponseAnalyzer scores one answer. It never fails: backend errors resolve
// to a fixed pool of encouraging analyses, malformed backend output degrades
// to neutral defaults.
type ResponseAnalyzer struct {
	backend ai.Generator
	enabled bool
	rng     *rand.Rand
	logger  *zap.Logger
}

func NewResponseAnalyzer(backend ai.Generator, aiEnabled bool, rng *rand.Rand, log *zap.Logger) *ResponseAnalyzer {
	return &ResponseAnalyzer{
		backend: backend,
		enabled: aiEnabled && backend != nil,
		rng:     rng,
		logger:  logger.WithFields(log),
	}
}

// Analyze scores the question/answer pair. responseTime is informational and
// included in the prompt only.
func (a *ResponseAnalyzer) Analyze(ctx context.Context, s *Session, question, answer string, responseTime time.Duration) *Analysis {
	if !a.enabled {
		return a.fallbackAnalysis()
	}

	raw, err := a.backend.GenerateContent(ctx, buildAnalysisPrompt(s, question, answer, responseTime))
	if err != nil {
		a.logger.Warn("answer analysis failed, using fallback analysis",
			zap.String("reason", string(ai.ReasonOf(err))),
			zap.Error(err),
		)

		if ai.Disabling(err) {
			a.enabled = false
		}

		return a.fallbackAnalysis()
	}

	analysis, err := parseAnalysis(raw)
	if err != nil {
		a.logger.Warn("malformed analysis payload, using degraded defaults",
			zap.Error(err),
			zap.String("payload_preview", logger.TruncateForLog(raw, 200)),
		)
		return degradedAnalysis()
	}

	return analysis
}

func buildAnalysisPrompt(s *Session, question, answer string, responseTime time.Duration) string {
	previousContext := ""
	if len(s.Turns) > 0 {
		previousContext = fmt.Sprintf("\nPrevious responses average score: %.1f/10", s.AverageScore())
	}

	return fmt.Sprintf(
		"As an expert interview coach, analyze this candidate's response:\n\n"+
			"Position: %s\n"+
			"Interview Type: %s\n"+
			"Question: %s\n"+
			"Answer: %s\n"+
			"Response time: %.1f seconds%s\n\n"+
			"Provide analysis in this JSON format:\n"+
			"{\n"+
			`    "feedback": "Brief encouraging feedback (2-3 sentences) that's specific to their answer",`+"\n"+
			`    "score": score_out_of_10,`+"\n"+
			`    "strengths": ["strength1", "strength2"],`+"\n"+
			`    "improvements": ["improvement1", "improvement2"],`+"\n"+
			`    "follow_up": "relevant follow-up question or null",`+"\n"+
			`    "key_insights": ["insight1", "insight2"]`+"\n"+
			"}\n\n"+
			"Be constructive, specific, and encouraging. Focus on interview skills, not just content.\n"+
			"Consider the interview type and provide varied, personalized feedback.",
		s.Position, s.Category, question, answer, responseTime.Seconds(), previousContext,
	)
}

// parseAnalysis decodes the JSON contract tolerantly: missing fields get
// neutral defaults, only an undecodable payload is an error.
func parseAnalysis(raw string) (*Analysis, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse analysis response: %w", err)
	}

	feedback := coerceString(data["feedback"])
	if feedback == "" {
		feedback = "Not provided"
	}

	followUp := coerceString(data["follow_up"])
	if strings.EqualFold(followUp, "null") || strings.EqualFold(followUp, "none") {
		followUp = ""
	}

	return &Analysis{
		Feedback:     feedback,
		Score:        coerceScore(data["score"]),
		Strengths:    coerceStringList(data["strengths"]),
		Improvements: coerceStringList(data["improvements"]),
		FollowUp:     followUp,
		KeyInsights:  coerceStringList(data["key_insights"]),
	}, nil
}

// degradedAnalysis is the neutral result for a turn whose backend payload
// could not be decoded. The session continues; the turn just scores zero.
func degradedAnalysis() *Analysis {
	return &Analysis{
		Feedback:     "Your answer was recorded, but detailed analysis is unavailable for this response.",
		Score:        0,
		Strengths:    []string{},
		Improvements: []string{},
	}
}

// fallbackPool holds the canned analyses used whenever the backend is absent
// or failing. Rotated pseudo-randomly, not tailored to the answer.
var fallbackPool = []Analysis{
	{
		Feedback:     "Great answer! You provided good detail and structure.",
		Score:        8,
		Strengths:    []string{"Clear communication", "Good examples"},
		Improvements: []string{"Consider adding more specific metrics or outcomes"},
	},
	{
		Feedback:     "Excellent response! You demonstrated strong problem-solving skills.",
		Score:        7,
		Strengths:    []string{"Logical thinking", "Practical approach"},
		Improvements: []string{"Try to quantify your impact where possible"},
	},
	{
		Feedback:     "Well done! Your answer shows good self-awareness and a growth mindset.",
		Score:        9,
		Strengths:    []string{"Self-reflection", "Learning orientation"},
		Improvements: []string{"Consider adding more technical details"},
	},
}

// fallbackAnalysis returns a copy of a pool entry so callers can never mutate
// the shared templates through an attached Analysis.
func (a *ResponseAnalyzer) fallbackAnalysis() *Analysis {
	template := fallbackPool[a.rng.Intn(len(fallbackPool))]

	return &Analysis{
		Feedback:     template.Feedback,
		Score:        template.Score,
		Strengths:    append([]string(nil), template.Strengths...),
		Improvements: append([]string(nil), template.Improvements...),
	}
}
