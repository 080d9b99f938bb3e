package booking

import (
	"net/http"
	"petcare/infras/otel"
	"petcare/internal/domains/booking/model/dto"
	"petcare/internal/domains/booking/service"
	"petcare/shared/constant"
	gDto "petcare/shared/dto"
	"petcare/shared/validator"
	"petcare/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateServiceBooking)
		routerGroup.Get("/", handler.GetServiceBookings)
		routerGroup.Get("/{reference}", handler.GetBookingByReference)
		routerGroup.Patch("/{reference}/confirm", handler.ConfirmBooking)
	})

	router.Route("/room-bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoomBooking)
		routerGroup.Get("/", handler.GetRoomBookings)
	})
}

// CreateServiceBooking handles the creation of a grooming or vet service booking.
// @Summary Create a service booking
// @Description Create a pending service booking. A reference number is assigned by the server.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceBookingRequest true "Create Service Booking Request"
// @Success 201 {object} response.Data[dto.ServiceBookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateServiceBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateServiceBooking")
	defer scope.End()

	req := dto.CreateServiceBookingRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.CreateServiceBooking(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Service booking created " + booking.ReferenceNumber)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetServiceBookings lists service bookings.
// @Summary List service bookings
// @Description Paginated list of service bookings. Ordered by sort_by only when it is given.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetServiceBookingsResponse] "List of service bookings"
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetServiceBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	bookings, err := handler.service.GetServiceBookings(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service bookings")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Service bookings retrieved successfully")

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetBookingByReference retrieves a booking of either kind by its reference number.
// @Summary Get a booking by reference
// @Description Look up a service (BK) or room (RB) booking by its reference number.
// @Tags Booking
// @Accept json
// @Produce json
// @Param reference path string true "Reference number"
// @Success 200 {object} response.Data[dto.BookingEntry] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{reference} [get]
func (handler *Handler) GetBookingByReference(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByReference")
	defer scope.End()

	reference := chi.URLParam(request, constant.RequestParamReference)

	booking, err := handler.service.GetByReference(ctx, reference)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("reference", reference).Msg("failed to get booking by reference")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// ConfirmBooking moves a pending booking to confirmed.
// @Summary Confirm a booking
// @Description Confirm a pending booking of either kind by its reference number.
// @Tags Booking
// @Accept json
// @Produce json
// @Param reference path string true "Reference number"
// @Success 200 {object} response.Data[dto.BookingEntry] "Confirmed booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{reference}/confirm [patch]
func (handler *Handler) ConfirmBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmBooking")
	defer scope.End()

	reference := chi.URLParam(request, constant.RequestParamReference)

	booking, err := handler.service.Confirm(ctx, reference)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("reference", reference).Msg("failed to confirm booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking confirmed " + reference)

	response.WithJSON(writer, http.StatusOK, booking)
}

// CreateRoomBooking handles the creation of a pet hotel stay.
// @Summary Create a room booking
// @Description Create a pending room booking. Totals are computed from the dates, booking type and price.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomBookingRequest true "Create Room Booking Request"
// @Success 201 {object} response.Data[dto.RoomBookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-bookings [post]
func (handler *Handler) CreateRoomBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomBooking")
	defer scope.End()

	req := dto.CreateRoomBookingRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.CreateRoomBooking(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room booking created " + booking.ReferenceNumber)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetRoomBookings lists room bookings.
// @Summary List room bookings
// @Description Paginated list of room bookings. Ordered by sort_by only when it is given.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetRoomBookingsResponse] "List of room bookings"
// @Failure 500 {object} response.Error
// @Router /v1/room-bookings [get]
func (handler *Handler) GetRoomBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	bookings, err := handler.service.GetRoomBookings(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room bookings")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room bookings retrieved successfully")

	response.WithJSON(writer, http.StatusOK, bookings)
}
