package catalog

import (
	"net/http"
	"petcare/infras/otel"
	"petcare/internal/domains/catalog/model"
	"petcare/internal/domains/catalog/service"
	"petcare/shared/constant"
	"petcare/shared/failure"
	"petcare/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/catalog", func(routerGroup chi.Router) {
		routerGroup.Get("/rooms", handler.GetRooms)
		routerGroup.Get("/rooms/{id}", handler.GetRoomByID)
		routerGroup.Get("/services", handler.GetServices)
	})
}

// GetRooms lists the pet hotel rooms.
// @Summary List rooms
// @Description The pet hotel rooms with nightly and hourly prices.
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "Rooms"
// @Router /v1/catalog/rooms [get]
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.GetRooms(ctx))
}

// GetRoomByID retrieves one pet hotel room.
// @Summary Get a room
// @Description A pet hotel room by its numeric id.
// @Tags Catalog
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room"
// @Failure 404 {object} response.Error
// @Router /v1/catalog/rooms/{id} [get]
func (handler *Handler) GetRoomByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id, err := strconv.Atoi(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, failure.NotFound(model.MessageRoomNotFound))

		return
	}

	room, err := handler.service.GetRoom(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Int("id", id).Msg("room not found")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, room)
}

// GetServices lists the grooming services.
// @Summary List grooming services
// @Description The grooming services that can be booked.
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[dto.GetServicesResponse] "Services"
// @Router /v1/catalog/services [get]
func (handler *Handler) GetServices(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.GetServices(ctx))
}
