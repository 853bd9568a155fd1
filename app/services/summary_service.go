package services

import (
	"context"
	"errors"
	"fmt"
)

// ErrAIService is the single failure kind for the summarization proxy.
// Provider-side causes (network, quota, malformed response) are deliberately
// collapsed; callers only learn that the service did not deliver.
var ErrAIService = errors.New("AI service error")

// fallbackSummary is returned when the provider answers with empty text.
const fallbackSummary = "Could not generate summary."

const summaryPrompt = "Summarize the following content in 2 sentences: %s"

// ContentGenerator is the outbound text-generation contract.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// SummaryService proxies summarization requests to a generative-AI provider.
type SummaryService struct {
	generator ContentGenerator
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(generator ContentGenerator) *SummaryService {
	return &SummaryService{generator: generator}
}

// Summarize wraps text in the fixed prompt template and forwards it to the
// provider. The provider's output is returned verbatim; empty output becomes
// a placeholder string.
func (s *SummaryService) Summarize(ctx context.Context, text string) (string, error) {
	out, err := s.generator.GenerateContent(ctx, fmt.Sprintf(summaryPrompt, text))
	if err != nil {
		return "", ErrAIService
	}
	if out == "" {
		return fallbackSummary, nil
	}
	return out, nil
}
