package gemini

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"ai-interviewer/internal/ai"
	"ai-interviewer/internal/logger"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	defaultModel = "gemini-2.5-flash"

	defaultMaxLogLength = 200

	probePrompt = "Reply with the single word OK."
)

// modelCaller matches the slice of the genai Models API the generator needs.
// It exists so tests can substitute the real client.
type modelCaller interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator wraps the Google GenAI client behind the ai.Generator contract.
// It performs a single call per request; retry policy belongs to callers.
type Generator struct {
	models    modelCaller
	model     string
	logger    *zap.Logger
	maxLogLen int
}

// New creates a Generator configured for the Gemini API backend.
func New(ctx context.Context, apiKey, model string, maxLogLength int, log *zap.Logger) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Generator{
		models:    client.Models,
		model:     model,
		logger:    logger.WithFields(log, logger.BackendFields("gemini", model)...),
		maxLogLen: maxLogLength,
	}, nil
}

// GenerateContent sends the prompt to Gemini and returns the joined textual response.
// Failures are classified into ai.BackendError reasons.
func (g *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.models == nil {
		return "", &ai.BackendError{Reason: ai.ReasonOther, Wrapped: errors.New("gemini generator is not initialized")}
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", &ai.BackendError{Reason: ai.ReasonOther, Wrapped: errors.New("prompt must not be empty")}
	}

	g.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", len(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, g.maxLogLen)),
	)

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classify(err)
	}

	output := joinCandidates(resp)
	if output == "" {
		return "", &ai.BackendError{Reason: ai.ReasonEmpty, Wrapped: errors.New("gemini api returned empty response")}
	}

	g.logger.Debug("gemini generate content response",
		zap.Int("response_length", len(output)),
		zap.String("response_preview", logger.TruncateForLog(output, g.maxLogLen)),
	)

	return output, nil
}

// Probe issues a single throwaway generation to test connectivity. The result
// decides whether the whole session runs AI-backed or in fallback mode.
func (g *Generator) Probe(ctx context.Context) error {
	_, err := g.GenerateContent(ctx, probePrompt)
	return err
}

func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.model
}

func joinCandidates(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	return strings.TrimSpace(builder.String())
}

// classify maps transport and API errors onto the coarse backend taxonomy.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden:
			return &ai.BackendError{Reason: ai.ReasonAuthInvalid, Wrapped: err}
		case strings.Contains(apiErr.Message, "API key not valid") || strings.Contains(apiErr.Status, "API_KEY"):
			return &ai.BackendError{Reason: ai.ReasonAuthInvalid, Wrapped: err}
		case apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED":
			return &ai.BackendError{Reason: ai.ReasonQuotaExceeded, Wrapped: err}
		case apiErr.Code >= http.StatusInternalServerError || apiErr.Status == "UNAVAILABLE":
			return &ai.BackendError{Reason: ai.ReasonNetworkUnavailable, Wrapped: err}
		default:
			return &ai.BackendError{Reason: ai.ReasonOther, Wrapped: err}
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return &ai.BackendError{Reason: ai.ReasonNetworkUnavailable, Wrapped: err}
	}

	return &ai.BackendError{Reason: ai.ReasonOther, Wrapped: err}
}
