package service

import (
	"context"
	"fmt"
	"petcare/infras/genai"
	"petcare/infras/otel"
	"petcare/internal/domains/assistant/model/dto"
	"petcare/shared/constant"
	"petcare/shared/failure"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	MessagePromptRequired = "Prompt is required"
	MessageUnavailable    = "AI service is currently unavailable"
)

type Assistant interface {
	Ask(ctx context.Context, req dto.PromptRequest) (dto.PromptResponse, error)
}

type serviceImpl struct {
	client genai.Client
	otel   otel.Otel
}

// New accepts a nil client; Ask then reports the assistant as unavailable.
func New(client genai.Client, otel otel.Otel) Assistant {
	return &serviceImpl{
		client: client,
		otel:   otel,
	}
}

func (s *serviceImpl) Ask(ctx context.Context, req dto.PromptRequest) (res dto.PromptResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Ask")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if strings.TrimSpace(req.Prompt) == constant.Empty {
		return res, failure.BadRequestFromString(MessagePromptRequired) // nolint:wrapcheck
	}

	if s.client == nil {
		log.Error().Msg("assistant client is not configured")

		return res, failure.ServiceUnavailable(MessageUnavailable) // nolint:wrapcheck
	}

	completion, err := s.client.Complete(ctx, req.Refined())
	if err != nil {
		log.Error().Err(err).Msg("failed to get assistant completion")

		return res, fmt.Errorf("failed to get assistant completion: %w", err)
	}

	res.Response = completion

	return res, nil
}
