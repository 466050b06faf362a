package room

import (
	"hotel/infras/otel"
	bookingService "hotel/internal/domains/booking/service"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	booking bookingService.Booking
	otel    otel.Otel
}

func New(service service.Room, booking bookingService.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		booking: booking,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/available", handler.GetAvailableRooms)
		routerGroup.Get("/{number}", handler.GetRoom)
		routerGroup.Get("/{number}/availability", handler.GetAvailability)
		routerGroup.Get("/{number}/quote", handler.GetQuote)
		routerGroup.Delete("/{number}", handler.DeleteRoom)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Add a room with a unique number.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Create Room Request"
// @Success 201 {object} response.Message "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/rooms [post]
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room created successfully")

	response.WithMessage(writer, http.StatusCreated, "Room created successfully")
}

// GetRooms lists rooms ordered by number.
// @Summary Get all rooms
// @Tags Room
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	rooms, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetAvailableRooms lists the rooms of a type that are free for the whole stay.
// @Summary Get available rooms
// @Tags Room
// @Produce json
// @Param type query string true "Room type" Enums(single, double, family, twin)
// @Param checkin query string true "Checkin date (YYYY-MM-DD)"
// @Param checkout query string true "Checkout date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailableRoomsResponse] "Free room numbers"
// @Failure 400 {object} response.Error
// @Router /v1/rooms/available [get]
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	stay := gDto.DateRange{}
	stay.FromRequest(r)

	checkin, checkout, err := stay.Parse()
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	roomType := r.URL.Query().Get(constant.RequestParamType)
	if err = validator.ValidateVar(roomType, "required,roomtype"); err != nil {
		response.WithError(w, err)

		return
	}

	rooms, err := handler.booking.AvailableRooms(ctx, roomType, checkin, checkout)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.AvailableRoomsResponse{
		Type:     roomType,
		Checkin:  stay.Checkin,
		Checkout: stay.Checkout,
		Rooms:    rooms,
	})
}

// GetRoom retrieves a room by its number.
// @Summary Get a room
// @Tags Room
// @Produce json
// @Param number path int true "Room number"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{number} [get]
func (handler *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoom")
	defer scope.End()

	number, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamNumber))
	if err != nil {
		response.WithError(w, err)

		return
	}

	room, err := handler.service.Get(ctx, number)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("room", number).Msg("failed to get room")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// GetAvailability tells whether one room is free for a stay.
// @Summary Check room availability
// @Tags Room
// @Produce json
// @Param number path int true "Room number"
// @Param checkin query string true "Checkin date (YYYY-MM-DD)"
// @Param checkout query string true "Checkout date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{number}/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	number, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamNumber))
	if err != nil {
		response.WithError(w, err)

		return
	}

	stay := gDto.DateRange{}
	stay.FromRequest(r)

	checkin, checkout, err := stay.Parse()
	if err != nil {
		response.WithError(w, err)

		return
	}

	available, err := handler.booking.IsAvailable(ctx, number, checkin, checkout)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("room", number).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.AvailabilityResponse{
		Number:    number,
		Checkin:   stay.Checkin,
		Checkout:  stay.Checkout,
		Available: available,
	})
}

// GetQuote prices a stay in a room for a guest without booking it.
// @Summary Quote a stay
// @Tags Room
// @Produce json
// @Param number path int true "Room number"
// @Param guest_id query int true "Guest ID"
// @Param checkin query string true "Checkin date (YYYY-MM-DD)"
// @Param checkout query string true "Checkout date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[any] "Nights, VIP discount and total"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{number}/quote [get]
func (handler *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuote")
	defer scope.End()

	number, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamNumber))
	if err != nil {
		response.WithError(w, err)

		return
	}

	guestID, err := shared.ConvertStringToInt(r.URL.Query().Get(constant.RequestParamGuestID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	stay := gDto.DateRange{}
	stay.FromRequest(r)

	checkin, checkout, err := stay.Parse()
	if err != nil {
		response.WithError(w, err)

		return
	}

	quote, err := handler.booking.Quote(ctx, guestID, number, checkin, checkout)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("room", number).Int("guest", guestID).Msg("failed to quote stay")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, quote)
}

// DeleteRoom removes a room that has no bookings.
// @Summary Delete a room
// @Tags Room
// @Produce json
// @Param number path int true "Room number"
// @Success 200 {object} response.Message "Room deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/rooms/{number} [delete]
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	number, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamNumber))
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, number); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("room", number).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room deleted successfully")

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}
