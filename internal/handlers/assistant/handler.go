package assistant

import (
	"net/http"
	"petcare/infras/otel"
	"petcare/internal/domains/assistant/model/dto"
	"petcare/internal/domains/assistant/service"
	"petcare/shared/constant"
	"petcare/shared/validator"
	"petcare/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Assistant
	otel    otel.Otel
}

func New(service service.Assistant, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/assistant", handler.Ask)
}

// Ask forwards a question to the pet-care assistant.
// @Summary Ask the assistant
// @Description Send a prompt about grooming, the pet hotel or vet services to the completion model.
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body dto.PromptRequest true "Prompt"
// @Success 200 {object} response.Data[dto.PromptResponse] "Assistant answer"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/assistant [post]
func (handler *Handler) Ask(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Ask")
	defer scope.End()

	req := dto.PromptRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	answer, err := handler.service.Ask(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get assistant answer")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, answer)
}
