package admin

import (
	"net/http"
	"petcare/infras/otel"
	"petcare/internal/domains/admin/model/dto"
	"petcare/internal/domains/admin/service"
	"petcare/shared/constant"
	"petcare/shared/validator"
	"petcare/transport/http/middleware"
	"petcare/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Admin
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Admin, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Post("/login", handler.Login)

		routerGroup.Group(func(guarded chi.Router) {
			guarded.Use(handler.middleware.Auth)

			guarded.Get("/bookings", handler.GetAllBookings)
			guarded.Put("/bookings/{id}/status", handler.SetBookingStatus)
			guarded.Get("/stats", handler.GetStats)
		})
	})
}

// Login exchanges the admin credentials for a bearer token.
// @Summary Admin login
// @Description Verify the configured admin credentials and issue a signed token.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse] "Token issued"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/login [post]
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	token, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Admin logged in")

	response.WithJSON(writer, http.StatusOK, token)
}

// GetAllBookings lists bookings of both kinds, newest first.
// @Summary List all bookings
// @Description Service and room bookings merged and ordered by creation time, newest first.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[[]dto.BookingEntry] "All bookings"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetAllBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllBookings")
	defer scope.End()

	bookings, err := handler.service.ListAllBookings(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list all bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// SetBookingStatus overrides the status of a booking.
// @Summary Override booking status
// @Description Set any lifecycle status on a booking of either kind, bypassing the transition rules.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.SetStatusRequest true "Set Status Request"
// @Success 200 {object} response.Data[dto.BookingEntry] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings/{id}/status [put]
// @Security BearerAuth
func (handler *Handler) SetBookingStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetBookingStatus")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.SetStatusRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.SetStatus(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to set booking status")

		response.WithError(writer, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminSubject).(string)
	scope.AddEvent("Booking status set to " + booking.Status + " by " + admin)

	response.WithJSON(writer, http.StatusOK, booking)
}

// GetStats counts bookings per status.
// @Summary Booking statistics
// @Description Counts of both booking kinds per status, with a total.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.StatsResponse] "Statistics"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking stats")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, stats)
}
