package interview

import (
	"time"

	"github.com/google/uuid"
)

// Session holds the whole state of one interview. It is owned exclusively by
// the Controller and becomes read-only once the report is attached.
type Session struct {
	ID           string
	Candidate    string
	Position     string
	Category     Category
	StartedAt    time.Time
	MaxQuestions int
	AIBacked     bool
	Turns        []*Turn
	Report       *OverallReport
	History      *QuestionHistory
}

// Params carries the candidate information collected during setup.
type Params struct {
	Candidate    string
	Position     string
	Category     Category
	MaxQuestions int
}

const defaultMaxQuestions = 10

// NewSession creates an empty session for the given candidate.
func NewSession(params Params) *Session {
	maxQuestions := params.MaxQuestions
	if maxQuestions <= 0 {
		maxQuestions = defaultMaxQuestions
	}

	return &Session{
		ID:           uuid.NewString(),
		Candidate:    params.Candidate,
		Position:     params.Position,
		Category:     params.Category,
		StartedAt:    time.Now(),
		MaxQuestions: maxQuestions,
		History:      NewQuestionHistory(),
	}
}

// AddTurn appends an answered turn to the session.
func (s *Session) AddTurn(turn *Turn) {
	s.Turns = append(s.Turns, turn)
}

// LastTurn returns the most recent turn or nil when none exist.
func (s *Session) LastTurn() *Turn {
	if len(s.Turns) == 0 {
		return nil
	}
	return s.Turns[len(s.Turns)-1]
}

// AverageScore is the arithmetic mean of per-turn scores, 0 with no turns.
// Turns skipped via the next command never become turns, so they are excluded
// by construction.
func (s *Session) AverageScore() float64 {
	if len(s.Turns) == 0 {
		return 0
	}

	total := 0
	for _, turn := range s.Turns {
		total += turn.Analysis.Score
	}

	return float64(total) / float64(len(s.Turns))
}

// TotalResponseTime sums the recorded answer times.
func (s *Session) TotalResponseTime() time.Duration {
	var total time.Duration
	for _, turn := range s.Turns {
		total += turn.ResponseTime
	}
	return total
}

// AverageResponseTime is the mean answer time over recorded turns.
func (s *Session) AverageResponseTime() time.Duration {
	if len(s.Turns) == 0 {
		return 0
	}
	return s.TotalResponseTime() / time.Duration(len(s.Turns))
}

// Turn is one answered question with its analysis. It is never mutated after
// creation except to attach an optional follow-up.
type Turn struct {
	Question     string
	Answer       string
	ResponseTime time.Duration
	AskedAt      time.Time
	Analysis     *Analysis
	FollowUp     *FollowUp
}

// FollowUp stores a follow-up exchange verbatim. Follow-up answers are never
// analyzed.
type FollowUp struct {
	Question string
	Answer   string
}

// Analysis is the structured scoring of one answer.
type Analysis struct {
	Feedback     string
	Score        int
	Strengths    []string
	Improvements []string
	FollowUp     string
	KeyInsights  []string
}

// OverallReport is the aggregate verdict produced once at session end.
type OverallReport struct {
	Score           float64
	Summary         string
	TopStrengths    []string
	Improvements    []string
	Recommendations []string
	Readiness       Readiness
	NextSteps       []string
}

// Readiness is the final categorical verdict on interview preparedness.
type Readiness string

const (
	ReadinessReady         Readiness = "Ready"
	ReadinessNeedsPractice Readiness = "Needs Practice"
	ReadinessNeedsWork     Readiness = "Needs Significant Work"
)

// ParseReadiness resolves a model-provided readiness string to the closed
// enumeration. Unknown values map to false.
func ParseReadiness(s string) (Readiness, bool) {
	switch trimLower(s) {
	case "ready":
		return ReadinessReady, true
	case "needs practice":
		return ReadinessNeedsPractice, true
	case "needs significant work":
		return ReadinessNeedsWork, true
	default:
		return "", false
	}
}

// ReadinessForScore derives the verdict deterministically from the mean score.
func ReadinessForScore(score float64) Readiness {
	switch {
	case score >= 7.5:
		return ReadinessReady
	case score >= 5:
		return ReadinessNeedsPractice
	default:
		return ReadinessNeedsWork
	}
}

// QuestionHistory tracks every question text issued within the session so the
// generator can suppress exact duplicates.
type QuestionHistory struct {
	asked map[string]struct{}
	order []string
}

func NewQuestionHistory() *QuestionHistory {
	return &QuestionHistory{asked: make(map[string]struct{})}
}

// Add inserts the question text. Adding an already known text is a no-op.
func (h *QuestionHistory) Add(question string) {
	if _, ok := h.asked[question]; ok {
		return
	}
	h.asked[question] = struct{}{}
	h.order = append(h.order, question)
}

// Contains reports whether the exact question text was already issued.
func (h *QuestionHistory) Contains(question string) bool {
	_, ok := h.asked[question]
	return ok
}

// Asked returns the issued questions in order.
func (h *QuestionHistory) Asked() []string {
	out := make([]string, len(h.order))
	copy(out, h.order)
	return out
}

func (h *QuestionHistory) Len() int {
	return len(h.asked)
}
