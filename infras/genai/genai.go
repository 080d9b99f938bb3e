package genai

//go:generate go run go.uber.org/mock/mockgen -source=./genai.go -destination=./mocks/genai_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"petcare/config"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

var ErrEmptyCompletion = errors.New("completion returned no candidates")

// Client sends a single prompt to the completion model and returns its text.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Close() error
}

type clientImpl struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// New returns nil when no API key is configured or the client cannot be built, so callers can
// report the assistant as unavailable instead of failing at startup.
func New(cfg *config.Config) Client {
	if cfg.External.Assistant.APIKey == "" {
		log.Warn().Msg("Assistant API key is not set, assistant is disabled")

		return nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.External.Assistant.APIKey))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create assistant client")

		return nil
	}

	log.Info().Str("model", cfg.External.Assistant.Model).Msg("Assistant client initialized")

	return &clientImpl{
		client: client,
		model:  client.GenerativeModel(cfg.External.Assistant.Model),
	}
}

func (c *clientImpl) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyCompletion
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	return sb.String(), nil
}

func (c *clientImpl) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("failed to close assistant client: %w", err)
	}

	return nil
}
