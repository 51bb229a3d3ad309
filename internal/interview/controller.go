package interview

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"ai-interviewer/internal/ai"
	"ai-interviewer/internal/logger"

	"go.uber.org/zap"
)

// minAnswerRunes rejects answers too short to analyze. Rejection re-prompts
// and does not consume a turn.
const minAnswerRunes = 5

const answerPrompt = "Your answer: "

// Controller drives the interview turn by turn. It owns the Session for the
// whole run; no other component mutates it.
type Controller struct {
	session *Session
	backend ai.Generator

	questions *QuestionGenerator
	analyzer  *ResponseAnalyzer
	overall   *OverallAnalyzer

	in  InputPort
	out OutputPort

	rng    *rand.Rand
	logger *zap.Logger
	now    func() time.Time
}

// NewController creates a controller for a fresh session. backend may be
// ai.Absent() when no credential is configured.
func NewController(params Params, backend ai.Generator, in InputPort, out OutputPort, rng *rand.Rand, log *zap.Logger) *Controller {
	session := NewSession(params)

	return &Controller{
		session: session,
		backend: backend,
		in:      in,
		out:     out,
		rng:     rng,
		logger: logger.WithFields(log,
			logger.SessionFields(session.ID, session.Category.String())...),
		now: time.Now,
	}
}

// Run conducts the interview until the question budget is spent or the
// candidate ends it, then attaches the final report. The returned session is
// complete and immutable on a nil error.
func (c *Controller) Run(ctx context.Context) (*Session, error) {
	c.probeBackend(ctx)

	aiBacked := c.session.AIBacked
	c.questions = NewQuestionGenerator(c.backend, aiBacked, c.rng, c.logger)
	c.analyzer = NewResponseAnalyzer(c.backend, aiBacked, c.rng, c.logger)
	c.overall = NewOverallAnalyzer(c.backend, aiBacked, c.logger)

	c.showIntro()

	asked := 0
	for asked < c.session.MaxQuestions {
		question := c.questions.NextQuestion(ctx, c.session)
		askedAt := c.now()

		c.displayQuestion(asked+1, question)

	answering:
		for {
			raw, err := c.in.ReadLine(answerPrompt)
			if err != nil {
				return c.session, fmt.Errorf("reading answer: %w", err)
			}

			input := ClassifyInput(raw)
			switch input.Command {
			case CommandNone:
				if utf8.RuneCountInString(input.Answer) < minAnswerRunes {
					c.out.Display("Please provide a fuller answer, or type 'next' to skip this question.")
					continue
				}
				if err := c.acceptAnswer(ctx, question, input.Answer, askedAt); err != nil {
					return c.session, err
				}
				asked++
				c.out.Display(fmt.Sprintf("Progress: %d/%d questions", asked, c.session.MaxQuestions))
				break answering

			case CommandNext:
				c.out.Display("Moving to the next question...")
				asked++
				break answering

			case CommandEnd:
				c.logger.Info("interview ended by candidate", zap.Int("questions_asked", asked))
				return c.finish(ctx)

			case CommandRepeat:
				c.displayQuestion(asked+1, question)

			case CommandHelp:
				c.showHelp()

			case CommandFeedback:
				c.showDetailedFeedback()
			}
		}
	}

	return c.finish(ctx)
}

// probeBackend issues a single connectivity test and commits the session to
// AI-backed or fallback mode. The decision is sticky; a transient failure
// here is not retried.
func (c *Controller) probeBackend(ctx context.Context) {
	if c.backend == nil {
		c.backend = ai.Absent()
	}

	_, err := c.backend.GenerateContent(ctx, "Reply with the single word OK.")
	if err != nil {
		c.logger.Info("backend probe failed, running in fallback mode",
			zap.String("reason", string(ai.ReasonOf(err))),
		)
		c.session.AIBacked = false
		return
	}

	c.logger.Info("backend probe succeeded, running AI-backed",
		zap.String(logger.FieldModel, c.backend.Model()),
	)
	c.session.AIBacked = true
}

func (c *Controller) acceptAnswer(ctx context.Context, question, answer string, askedAt time.Time) error {
	responseTime := c.now().Sub(askedAt)

	analysis := c.analyzer.Analyze(ctx, c.session, question, answer, responseTime)

	turn := &Turn{
		Question:     question,
		Answer:       answer,
		ResponseTime: responseTime,
		AskedAt:      askedAt,
		Analysis:     analysis,
	}
	c.session.AddTurn(turn)

	c.displayTurnFeedback(analysis)

	if analysis.FollowUp != "" {
		c.out.Display("Follow-up: " + analysis.FollowUp)
		raw, err := c.in.ReadLine(answerPrompt)
		if err != nil {
			return fmt.Errorf("reading follow-up answer: %w", err)
		}
		// Follow-up answers are stored verbatim and never analyzed.
		if followUp := strings.TrimSpace(raw); followUp != "" {
			turn.FollowUp = &FollowUp{Question: analysis.FollowUp, Answer: followUp}
		}
	}

	return nil
}

// finish builds the overall report and freezes the session.
func (c *Controller) finish(ctx context.Context) (*Session, error) {
	report := c.overall.Report(ctx, c.session)
	c.session.Report = report

	c.displayReport(report)

	c.logger.Info("interview finished",
		zap.Int("turns", len(c.session.Turns)),
		zap.Float64("average_score", c.session.AverageScore()),
		zap.String("readiness", string(report.Readiness)),
	)

	return c.session, nil
}

func (c *Controller) showIntro() {
	mode := "demo mode (built-in questions)"
	if c.session.AIBacked {
		mode = "AI-backed"
	}

	c.out.Display(fmt.Sprintf(
		"Interview simulation starting\n"+
			"Candidate: %s\n"+
			"Position: %s\n"+
			"Interview type: %s\n"+
			"Mode: %s\n\n"+
			"Answer each question naturally. Type 'help' for the list of commands.",
		c.session.Candidate, c.session.Position, c.session.Category, mode,
	))
}

func (c *Controller) displayQuestion(number int, question string) {
	c.out.Display(fmt.Sprintf("Question %d of %d:\n  %s", number, c.session.MaxQuestions, question))
}

func (c *Controller) displayTurnFeedback(analysis *Analysis) {
	lines := []string{
		fmt.Sprintf("Score: %d/10", analysis.Score),
		analysis.Feedback,
	}

	// Show at most the top two insights inline; the rest stay available via
	// the feedback command.
	for i, insight := range analysis.KeyInsights {
		if i == 2 {
			break
		}
		lines = append(lines, "Insight: "+insight)
	}

	c.out.Display(strings.Join(lines, "\n"))
}

func (c *Controller) showDetailedFeedback() {
	last := c.session.LastTurn()
	if last == nil {
		c.out.Display("No responses to analyze yet.")
		return
	}

	analysis := last.Analysis

	var b strings.Builder
	fmt.Fprintf(&b, "Detailed analysis of your last response\n")
	fmt.Fprintf(&b, "Question: %s\n", last.Question)
	fmt.Fprintf(&b, "Your answer: %s\n", logger.TruncateForLog(last.Answer, 200))
	fmt.Fprintf(&b, "Response time: %.1fs\n", last.ResponseTime.Seconds())
	fmt.Fprintf(&b, "Score: %d/10\n", analysis.Score)

	if len(analysis.Strengths) > 0 {
		fmt.Fprintf(&b, "Strengths:\n")
		for _, s := range analysis.Strengths {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}
	if len(analysis.Improvements) > 0 {
		fmt.Fprintf(&b, "Areas for improvement:\n")
		for _, s := range analysis.Improvements {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}
	if len(analysis.KeyInsights) > 0 {
		fmt.Fprintf(&b, "Key insights:\n")
		for _, s := range analysis.KeyInsights {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}

	c.out.Display(strings.TrimRight(b.String(), "\n"))
}

func (c *Controller) showHelp() {
	c.out.Display(
		"Available commands:\n" +
			"  - 'next' or 'skip': move to the next question\n" +
			"  - 'repeat': show the current question again\n" +
			"  - 'feedback': detailed analysis of your last answer\n" +
			"  - 'end': finish the interview and get your report\n" +
			"  - 'help': show this message",
	)
}

func (c *Controller) displayReport(report *OverallReport) {
	var b strings.Builder

	fmt.Fprintf(&b, "Interview performance report\n")
	fmt.Fprintf(&b, "Questions answered: %d\n", len(c.session.Turns))
	fmt.Fprintf(&b, "Average score: %.1f/10\n", report.Score)
	fmt.Fprintf(&b, "Total answer time: %.1fs\n", c.session.TotalResponseTime().Seconds())
	fmt.Fprintf(&b, "Readiness: %s\n\n", report.Readiness)
	fmt.Fprintf(&b, "%s\n", report.Summary)

	writeReportSection(&b, "Top strengths", report.TopStrengths)
	writeReportSection(&b, "Areas for improvement", report.Improvements)
	writeReportSection(&b, "Recommendations", report.Recommendations)
	writeReportSection(&b, "Next steps", report.NextSteps)

	c.out.Display(strings.TrimRight(b.String(), "\n"))
}

func writeReportSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintf(b, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
}
