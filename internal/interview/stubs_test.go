package interview

import (
	"context"
	"io"
	"math/rand"
	"strings"
)

// stubResult is one scripted backend reply.
type stubResult struct {
	text string
	err  error
}

// stubGenerator replays scripted backend replies and records every prompt.
// When the script is exhausted it returns exhaustedErr.
type stubGenerator struct {
	queue        []stubResult
	prompts      []string
	exhaustedErr error
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)

	if len(s.queue) == 0 {
		return "", s.exhaustedErr
	}

	result := s.queue[0]
	s.queue = s.queue[1:]
	return result.text, result.err
}

func (s *stubGenerator) Model() string { return "stub-model" }

// scriptedInput replays a fixed list of utterances, then reports EOF.
type scriptedInput struct {
	lines []string
}

func (s *scriptedInput) ReadLine(_ string) (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}

	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

// recordingOutput captures everything the engine displays.
type recordingOutput struct {
	texts []string
}

func (r *recordingOutput) Display(text string) {
	r.texts = append(r.texts, text)
}

func (r *recordingOutput) contains(substr string) bool {
	for _, text := range r.texts {
		if strings.Contains(text, substr) {
			return true
		}
	}
	return false
}

func (r *recordingOutput) count(substr string) int {
	total := 0
	for _, text := range r.texts {
		if strings.Contains(text, substr) {
			total++
		}
	}
	return total
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func testSession(category Category, maxQuestions int) *Session {
	return NewSession(Params{
		Candidate:    "Alex",
		Position:     "Backend Engineer",
		Category:     category,
		MaxQuestions: maxQuestions,
	})
}

func isFallbackPoolAnalysis(analysis *Analysis) bool {
	if analysis == nil {
		return false
	}
	for _, template := range fallbackPool {
		if template.Feedback == analysis.Feedback && template.Score == analysis.Score {
			return true
		}
	}
	return false
}

func isBankQuestion(category Category, question string) bool {
	for _, banked := range bankQuestions(category) {
		if banked == question {
			return true
		}
	}
	return false
}
