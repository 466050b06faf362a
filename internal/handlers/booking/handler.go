package booking

import (
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const messageNoRoomAvailable = "no room available"

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
		routerGroup.Post("/", handler.BookRoom)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/on", handler.GetBookingsOn)
		routerGroup.Get("/{id}", handler.GetBooking)
		routerGroup.Post("/{id}/checkout", handler.CheckOut)
		routerGroup.Delete("/{id}", handler.CancelBooking)
	})
}

// BookRoom books one free room of the requested type for the stay.
// @Summary Book a room
// @Description Picks one free room of the type at random and records the booking payment.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.BookRoomRequest true "Book Room Request"
// @Success 201 {object} response.Data[dto.BookRoomResponse] "Booked room"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "No room available"
// @Router /v1/bookings [post]
func (handler *Handler) BookRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookRoom")
	defer scope.End()

	req := dto.BookRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	checkin, checkout, err := req.Parse()
	if err != nil {
		response.WithError(writer, err)

		return
	}

	booked, err := handler.service.BookOneRoom(ctx, req.GuestID, req.RoomType, checkin, checkout)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book room")

		response.WithError(writer, err)

		return
	}

	if !booked.Booked() {
		scope.AddEvent("No room available")

		response.WithError(writer, failure.Conflict(messageNoRoomAvailable))

		return
	}

	scope.AddEvent("Room booked successfully")

	response.WithJSON(writer, http.StatusCreated, booked)
}

// GetBookings lists bookings ordered by ID.
// @Summary Get all bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookings, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingsOn lists the bookings whose stay includes the date.
// @Summary Get bookings on a date
// @Tags Booking
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[[]dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Router /v1/bookings/on [get]
func (handler *Handler) GetBookingsOn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsOn")
	defer scope.End()

	date, err := shared.ConvertStringToDate(r.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.BookingsOn(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings on date")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBooking retrieves a booking by ID.
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("booking", id).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// CheckOut ends a stay on the given date.
// @Summary Check out a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body dto.CheckOutRequest true "Check Out Request"
// @Success 200 {object} response.Message "Checked out successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Date outside the stay"
// @Router /v1/bookings/{id}/checkout [post]
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.CheckOutRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	date, err := shared.ConvertStringToDate(req.Date)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.CheckOut(ctx, id, date); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("booking", id).Msg("failed to check out")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking checked out")

	response.WithMessage(w, http.StatusOK, "Checked out successfully")
}

// CancelBooking cancels a booking, refunding it when notice allows.
// @Summary Cancel a booking
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Data[dto.CancelResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [delete]
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	cancelled, err := handler.service.Cancel(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("booking", id).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, cancelled)
}
