package interview

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"unicode/utf8"

	"ai-interviewer/internal/ai"
	"ai-interviewer/internal/logger"

	"go.uber.org/zap"
)

const (
	// minQuestionRunes rejects degenerate backend output such as "Yes." or
	// a stray punctuation mark.
	minQuestionRunes = 10

	// contextTurns is how many recent question/answer pairs go into the prompt.
	contextTurns = 2

	// contextAnswerLimit bounds the answer excerpts embedded in the prompt.
	contextAnswerLimit = 150

	// bankRetryWindow is how many entries remain selectable once a category
	// bank is exhausted. Repetition is accepted at that point; the interview
	// must never stall.
	bankRetryWindow = 5
)

// Stage names for the question pipeline, used in logs.
const (
	stageGenerate   = "generate"
	stageRegenerate = "regenerate"
	stageBank       = "bank"
)

// QuestionGenerator produces the next interview question. It runs a staged
// pipeline: one backend generation, one bounded regeneration on an exact
// duplicate, then the static bank. It never fails.
type QuestionGenerator struct {
	backend ai.Generator
	enabled bool
	rng     *rand.Rand
	logger  *zap.Logger
}

// NewQuestionGenerator creates a generator. aiEnabled is the sticky decision
// from the setup probe; a disabling backend failure mid-session also turns the
// backend off for the remainder.
func NewQuestionGenerator(backend ai.Generator, aiEnabled bool, rng *rand.Rand, log *zap.Logger) *QuestionGenerator {
	return &QuestionGenerator{
		backend: backend,
		enabled: aiEnabled && backend != nil,
		rng:     rng,
		logger:  logger.WithFields(log),
	}
}

// NextQuestion returns usable question text and records it in the session
// history before returning.
func (g *QuestionGenerator) NextQuestion(ctx context.Context, s *Session) string {
	if g.enabled {
		if question, ok := g.tryGenerate(ctx, s); ok {
			if !s.History.Contains(question) {
				s.History.Add(question)
				return question
			}

			g.logger.Debug("backend returned an already asked question",
				zap.String("stage", stageGenerate),
				zap.String("question", question),
			)

			if retry, ok := g.tryRegenerateOnce(ctx, s, question); ok && !s.History.Contains(retry) {
				s.History.Add(retry)
				return retry
			}
		}
	}

	question := g.fromBank(s)
	s.History.Add(question)
	return question
}

func (g *QuestionGenerator) tryGenerate(ctx context.Context, s *Session) (string, bool) {
	raw, err := g.backend.GenerateContent(ctx, buildQuestionPrompt(s))
	if err != nil {
		g.noteBackendFailure(stageGenerate, err)
		return "", false
	}

	return g.cleanAndValidate(stageGenerate, raw)
}

// tryRegenerateOnce issues exactly one more attempt asking for a different
// question on the same topic. There is no further retry by design.
func (g *QuestionGenerator) tryRegenerateOnce(ctx context.Context, s *Session, duplicate string) (string, bool) {
	prompt := fmt.Sprintf(
		"The previous question was: %q\n"+
			"Generate a different, unique interview question for the same topic area.\n"+
			"It must not match any of these already asked questions:\n%s\n"+
			"Return ONLY the new question, no additional text.",
		duplicate, bulletList(s.History.Asked()),
	)

	raw, err := g.backend.GenerateContent(ctx, prompt)
	if err != nil {
		g.noteBackendFailure(stageRegenerate, err)
		return "", false
	}

	return g.cleanAndValidate(stageRegenerate, raw)
}

func (g *QuestionGenerator) cleanAndValidate(stage, raw string) (string, bool) {
	question := cleanQuestion(raw)
	if utf8.RuneCountInString(question) < minQuestionRunes {
		g.logger.Warn("rejecting generated question as too short",
			zap.String("stage", stage),
			zap.String("question", question),
		)
		return "", false
	}

	return question, true
}

// fromBank selects from the static category bank, excluding already asked
// entries. Once the bank is exhausted the exclusion is lifted for this bank
// only and a question from the first few entries repeats.
func (g *QuestionGenerator) fromBank(s *Session) string {
	questions := bankQuestions(s.Category)

	available := make([]string, 0, len(questions))
	for _, q := range questions {
		if !s.History.Contains(q) {
			available = append(available, q)
		}
	}

	if len(available) == 0 {
		window := bankRetryWindow
		if window > len(questions) {
			window = len(questions)
		}
		available = questions[:window]

		g.logger.Info("question bank exhausted, repeating early entries",
			zap.String("stage", stageBank),
			zap.String(logger.FieldCategory, s.Category.String()),
		)
	}

	return available[g.rng.Intn(len(available))]
}

func (g *QuestionGenerator) noteBackendFailure(stage string, err error) {
	g.logger.Warn("question generation failed, falling back",
		zap.String("stage", stage),
		zap.String("reason", string(ai.ReasonOf(err))),
		zap.Error(err),
	)

	if ai.Disabling(err) {
		g.enabled = false
		g.logger.Info("backend disabled for the rest of the session",
			zap.String("reason", string(ai.ReasonOf(err))),
		)
	}
}

func buildQuestionPrompt(s *Session) string {
	asked := "None"
	if questions := s.History.Asked(); len(questions) > 0 {
		asked = bulletList(questions)
	}

	context := "None"
	if len(s.Turns) > 0 {
		recent := s.Turns
		if len(recent) > contextTurns {
			recent = recent[len(recent)-contextTurns:]
		}

		var parts []string
		for i, turn := range recent {
			parts = append(parts,
				fmt.Sprintf("Q%d: %s", i+1, turn.Question),
				fmt.Sprintf("A%d: %s", i+1, logger.TruncateForLog(turn.Answer, contextAnswerLimit)),
			)
		}
		context = strings.Join(parts, "\n")
	}

	return fmt.Sprintf(
		"You are an experienced interviewer conducting a %s interview for a %s position.\n"+
			"Candidate name: %s\n\n"+
			"Previous questions asked in this interview:\n%s\n\n"+
			"Current conversation context:\n%s\n\n"+
			"Generate ONE unique, thoughtful, professional interview question that:\n"+
			"- Is appropriate for the %s role and %s interview type\n"+
			"- Is completely different from the previous questions listed above\n"+
			"- Builds on the conversation naturally\n"+
			"- Encourages detailed, specific responses\n"+
			"- Varies in difficulty and topic area\n\n"+
			"Return ONLY the question, no additional text or formatting.",
		s.Category, s.Position, s.Candidate, asked, context, s.Position, s.Category,
	)
}

// cleanQuestion strips surrounding whitespace and quotation marks from raw
// backend output.
func cleanQuestion(raw string) string {
	question := strings.TrimSpace(raw)
	question = strings.Trim(question, `"'`)
	return strings.TrimSpace(question)
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}
