package services

import (
	"context"
	"os"
	"sync"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

const geminiModel = "gemini-1.5-flash"

// LLMService talks to the Gemini API through langchaingo. The client is
// created on first use so a missing GEMINI_API_KEY surfaces as a per-request
// error instead of taking the whole server down at startup.
type LLMService struct {
	mu     sync.Mutex
	client llms.Model
}

func NewLLMService() *LLMService {
	return &LLMService{}
}

func (s *LLMService) ensureClient(ctx context.Context) (llms.Model, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingCredential
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(geminiModel),
	)
	if err != nil {
		return nil, &UpstreamError{Message: err.Error()}
	}

	s.client = llm
	return s.client, nil
}

// Generate sends the prompt to Gemini and returns the raw model text.
// Exactly one attempt; the caller decides what a failure means.
func (s *LLMService) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := s.ensureClient(ctx)
	if err != nil {
		return "", err
	}

	resp, err := llms.GenerateFromSinglePrompt(ctx, client, prompt)
	if err != nil {
		return "", &UpstreamError{Message: err.Error()}
	}
	return resp, nil
}
