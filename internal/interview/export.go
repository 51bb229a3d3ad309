package interview

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SessionRecord is the flat JSON shape of an exported session. It is written
// once on explicit request and never read back by the engine.
type SessionRecord struct {
	CandidateInfo   CandidateInfo   `json:"candidate_info"`
	SessionMetadata SessionMetadata `json:"session_metadata"`
	Responses       []TurnRecord    `json:"responses"`
	OverallAnalysis *ReportRecord   `json:"overall_analysis,omitempty"`
}

type CandidateInfo struct {
	Name          string `json:"name"`
	Position      string `json:"position"`
	InterviewType string `json:"interview_type"`
}

type SessionMetadata struct {
	SessionID      string  `json:"session_id"`
	Date           string  `json:"date"`
	TotalQuestions int     `json:"total_questions"`
	AverageScore   float64 `json:"average_score"`
	AIPowered      bool    `json:"ai_powered"`
}

type TurnRecord struct {
	Question     string          `json:"question"`
	Answer       string          `json:"answer"`
	ResponseTime float64         `json:"response_time"`
	Timestamp    string          `json:"timestamp"`
	Score        int             `json:"score"`
	Analysis     AnalysisRecord  `json:"analysis"`
	FollowUp     *FollowUpRecord `json:"follow_up,omitempty"`
}

type AnalysisRecord struct {
	Feedback     string   `json:"feedback"`
	Score        int      `json:"score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	FollowUp     string   `json:"follow_up,omitempty"`
	KeyInsights  []string `json:"key_insights,omitempty"`
}

type FollowUpRecord struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ReportRecord struct {
	OverallScore            float64  `json:"overall_score"`
	Summary                 string   `json:"summary"`
	TopStrengths            []string `json:"top_strengths"`
	AreasForImprovement     []string `json:"areas_for_improvement"`
	SpecificRecommendations []string `json:"specific_recommendations"`
	InterviewReadiness      string   `json:"interview_readiness"`
	NextSteps               []string `json:"next_steps"`
}

// BuildRecord converts a finished session into its export shape.
func BuildRecord(s *Session) *SessionRecord {
	record := &SessionRecord{
		CandidateInfo: CandidateInfo{
			Name:          s.Candidate,
			Position:      s.Position,
			InterviewType: s.Category.String(),
		},
		SessionMetadata: SessionMetadata{
			SessionID:      s.ID,
			Date:           s.StartedAt.Format("2006-01-02 15:04:05"),
			TotalQuestions: len(s.Turns),
			AverageScore:   s.AverageScore(),
			AIPowered:      s.AIBacked,
		},
		Responses: make([]TurnRecord, 0, len(s.Turns)),
	}

	for _, turn := range s.Turns {
		turnRecord := TurnRecord{
			Question:     turn.Question,
			Answer:       turn.Answer,
			ResponseTime: turn.ResponseTime.Seconds(),
			Timestamp:    turn.AskedAt.Format("15:04:05"),
			Score:        turn.Analysis.Score,
			Analysis: AnalysisRecord{
				Feedback:     turn.Analysis.Feedback,
				Score:        turn.Analysis.Score,
				Strengths:    turn.Analysis.Strengths,
				Improvements: turn.Analysis.Improvements,
				FollowUp:     turn.Analysis.FollowUp,
				KeyInsights:  turn.Analysis.KeyInsights,
			},
		}

		if turn.FollowUp != nil {
			turnRecord.FollowUp = &FollowUpRecord{
				Question: turn.FollowUp.Question,
				Answer:   turn.FollowUp.Answer,
			}
		}

		record.Responses = append(record.Responses, turnRecord)
	}

	if s.Report != nil {
		record.OverallAnalysis = &ReportRecord{
			OverallScore:            s.Report.Score,
			Summary:                 s.Report.Summary,
			TopStrengths:            s.Report.TopStrengths,
			AreasForImprovement:     s.Report.Improvements,
			SpecificRecommendations: s.Report.Recommendations,
			InterviewReadiness:      string(s.Report.Readiness),
			NextSteps:               s.Report.NextSteps,
		}
	}

	return record
}

// Export writes the session record under dir, creating it on demand, and
// returns the written file path. A failed write never invalidates the
// in-memory report.
func Export(dir string, s *Session) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating results directory %q: %w", dir, err)
	}

	filename := fmt.Sprintf("interview_%s_%s.json", sanitizeName(s.Candidate), s.StartedAt.Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	data, err := json.MarshalIndent(BuildRecord(s), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling session record: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing session record %q: %w", path, err)
	}

	return path, nil
}

func sanitizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "candidate"
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	return b.String()
}
