package service

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	paymentModel "hotel/internal/domains/payment/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/internal/event"
	"hotel/internal/store"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/random"
	"hotel/shared/timezone"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	IsAvailable(ctx context.Context, roomNumber int, checkin, checkout time.Time) (bool, error)
	AvailableRooms(ctx context.Context, roomType string, checkin, checkout time.Time) ([]int, error)
	Quote(ctx context.Context, guestID, roomNumber int, checkin, checkout time.Time) (dto.QuoteResponse, error)
	BookOneRoom(ctx context.Context, guestID int, roomType string, checkin, checkout time.Time) (dto.BookRoomResponse, error)
	CheckOut(ctx context.Context, bookingID int, checkoutDate time.Time) error
	Cancel(ctx context.Context, bookingID int) (dto.CancelResponse, error)
	Get(ctx context.Context, id int) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	GuestBookings(ctx context.Context, guestID int) ([]dto.BookingResponse, error)
	BookingsOn(ctx context.Context, date time.Time) ([]dto.BookingResponse, error)
}

type serviceImpl struct {
	store     *store.Store
	pricing   Pricing
	random    random.Source
	publisher event.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(store *store.Store, random random.Source, publisher event.Publisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		store:     store,
		pricing:   Pricing{VIPDiscount: cfg.App.Pricing.VIPDiscount},
		random:    random,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) IsAvailable(ctx context.Context, roomNumber int, checkin, checkout time.Time) (available bool, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validateStay(checkin, checkout); err != nil {
		return false, err
	}

	err = s.store.View(func(r *store.Reader) error {
		if _, ok := r.Room(roomNumber); !ok {
			return failure.NotFound("room not found") // nolint:wrapcheck
		}

		available = isFree(r.BookingsForRoom(roomNumber), checkin, checkout)

		return nil
	})

	return available, err
}

func (s *serviceImpl) AvailableRooms(ctx context.Context, roomType string, checkin, checkout time.Time) (res []int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	kind, err := roomModel.ParseType(roomType)
	if err != nil {
		return nil, err
	}

	if err = validateStay(checkin, checkout); err != nil {
		return nil, err
	}

	cacheKey := shared.BuildCacheKey(constant.CacheKeyAvailableRooms, string(kind), timezone.FormatDate(checkin), timezone.FormatDate(checkout))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for available rooms")

		return res, nil
	}

	_ = s.store.View(func(r *store.Reader) error {
		res = availableRooms(r, kind, checkin, checkout)

		return nil
	})

	if res == nil {
		res = []int{}
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save available rooms to cache")
	}

	return res, nil
}

func (s *serviceImpl) Quote(ctx context.Context, guestID, roomNumber int, checkin, checkout time.Time) (res dto.QuoteResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validateStay(checkin, checkout); err != nil {
		return res, err
	}

	today := timezone.Today()

	err = s.store.View(func(r *store.Reader) error {
		guest, ok := r.Guest(guestID)
		if !ok {
			return failure.NotFound("guest not found") // nolint:wrapcheck
		}

		room, ok := r.Room(roomNumber)
		if !ok {
			return failure.NotFound("room not found") // nolint:wrapcheck
		}

		res = dto.QuoteResponse{
			RoomNumber:  room.Number,
			Nights:      timezone.DaysBetween(checkin, checkout),
			VIPDiscount: guest.DiscountOn(today),
			TotalAmount: s.pricing.Price(room, checkin, checkout, guest.DiscountOn(today)),
		}

		return nil
	})

	return res, err
}

// BookOneRoom reserves a random free room of roomType. When nothing is free the
// response carries model.NoRoomAvailable and the error is nil.
func (s *serviceImpl) BookOneRoom(ctx context.Context, guestID int, roomType string, checkin, checkout time.Time) (res dto.BookRoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookOneRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.RoomNumber = model.NoRoomAvailable

	kind, err := roomModel.ParseType(roomType)
	if err != nil {
		return res, err
	}

	if err = validateStay(checkin, checkout); err != nil {
		return res, err
	}

	today := timezone.Today()

	var booking model.Booking

	err = s.store.Update(func(tx *store.Tx) error {
		guest, ok := tx.Guest(guestID)
		if !ok {
			return failure.BadRequestFromString(fmt.Sprintf("guest %d does not exist", guestID)) // nolint:wrapcheck
		}

		candidates := availableRooms(&tx.Reader, kind, checkin, checkout)
		if len(candidates) == 0 {
			return nil
		}

		room, _ := tx.Room(candidates[s.random.IntN(len(candidates))])
		total := s.pricing.Price(room, checkin, checkout, guest.DiscountOn(today))

		booking = tx.InsertBooking(model.Booking{
			GuestID:      guest.ID,
			RoomNumber:   room.Number,
			BookingDate:  today,
			CheckinDate:  checkin,
			CheckoutDate: checkout,
			TotalAmount:  total,
		})

		tx.InsertPayment(paymentModel.Payment{
			Date:    today,
			GuestID: guest.ID,
			Amount:  total,
			Reason:  paymentModel.ReasonBooking,
		})

		return nil
	})
	if err != nil {
		return res, err
	}

	if booking.ID == 0 {
		log.Info().Str("type", string(kind)).Msg("no room available")

		return res, nil
	}

	res = dto.BookRoomResponse{
		BookingID:   booking.ID,
		RoomNumber:  booking.RoomNumber,
		TotalAmount: booking.TotalAmount,
	}

	scope.SetAttribute("booking.id", booking.ID)
	log.Info().Int("bookingID", booking.ID).Int("room", booking.RoomNumber).Int("guestID", guestID).Msg("room booked")

	s.afterChange(ctx, bookingEvent(event.BookingCreated, booking, booking.TotalAmount, paymentModel.ReasonBooking))

	return res, nil
}

func (s *serviceImpl) CheckOut(ctx context.Context, bookingID int, checkoutDate time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var booking model.Booking

	err = s.store.Update(func(tx *store.Tx) error {
		var ok bool

		booking, ok = tx.Booking(bookingID)
		if !ok {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if checkoutDate.Before(booking.CheckinDate) || checkoutDate.After(booking.CheckoutDate) {
			return failure.Conflict(fmt.Sprintf("checkout date %s is outside the booked stay %s to %s", // nolint:wrapcheck
				timezone.FormatDate(checkoutDate), timezone.FormatDate(booking.CheckinDate), timezone.FormatDate(booking.CheckoutDate)))
		}

		tx.DeleteBooking(bookingID)

		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Int("bookingID", bookingID).Msg("guest checked out")

	s.afterChange(ctx, bookingEvent(event.BookingCheckedOut, booking, 0, constant.Empty))

	return nil
}

// Cancel removes the booking and refunds it in full when the checkin is at
// least RefundNoticeDays away.
func (s *serviceImpl) Cancel(ctx context.Context, bookingID int) (res dto.CancelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	today := timezone.Today()

	var booking model.Booking

	err = s.store.Update(func(tx *store.Tx) error {
		var ok bool

		booking, ok = tx.Booking(bookingID)
		if !ok {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		tx.DeleteBooking(bookingID)

		res.BookingID = bookingID

		if timezone.DaysBetween(today, booking.CheckinDate) >= s.cfg.App.RefundNoticeDays {
			res.Refunded = true
			res.RefundAmount = -booking.TotalAmount

			tx.InsertPayment(paymentModel.Payment{
				Date:    today,
				GuestID: booking.GuestID,
				Amount:  res.RefundAmount,
				Reason:  paymentModel.ReasonRefund,
			})
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	log.Info().Int("bookingID", bookingID).Bool("refunded", res.Refunded).Msg("booking cancelled")

	reason := paymentModel.Reason(constant.Empty)
	if res.Refunded {
		reason = paymentModel.ReasonRefund
	}

	s.afterChange(ctx, bookingEvent(event.BookingCancelled, booking, res.RefundAmount, reason))

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.BookingResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.store.View(func(r *store.Reader) error {
		booking, ok := r.Booking(id)
		if !ok {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		res.FromModel(booking)

		return nil
	})

	return res, err
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var bookings []model.Booking

	_ = s.store.View(func(r *store.Reader) error {
		bookings = r.Bookings()

		return nil
	})

	slices.SortFunc(bookings, func(a, b model.Booking) int { return a.ID - b.ID })

	res.FromModels(shared.Paginate(bookings, params.Page, params.Limit), len(bookings), params.Limit)

	return res, nil
}

func (s *serviceImpl) GuestBookings(ctx context.Context, guestID int) (res []dto.BookingResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GuestBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.store.View(func(r *store.Reader) error {
		if _, ok := r.Guest(guestID); !ok {
			return failure.NotFound("guest not found") // nolint:wrapcheck
		}

		res = dto.FromModels(r.BookingsForGuest(guestID))

		return nil
	})

	return res, err
}

// BookingsOn lists bookings whose stay includes date, checkin and checkout days included.
func (s *serviceImpl) BookingsOn(ctx context.Context, date time.Time) (res []dto.BookingResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingsOn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var matched []model.Booking

	_ = s.store.View(func(r *store.Reader) error {
		for _, booking := range r.Bookings() {
			if booking.Covers(date) {
				matched = append(matched, booking)
			}
		}

		return nil
	})

	return dto.FromModels(matched), nil
}

// afterChange drops cached availability and payment reports and announces the change.
func (s *serviceImpl) afterChange(ctx context.Context, e event.Event) {
	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyAvailableRooms)
	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyPaymentsOn)

	if err := s.publisher.Publish(ctx, e); err != nil {
		log.Error().Err(err).Str("event", string(e.Type)).Msg("failed to publish booking event")
	}
}

func bookingEvent(eventType event.Type, booking model.Booking, amount float64, reason paymentModel.Reason) event.Event {
	e := event.New(eventType, booking.GuestID)
	e.BookingID = booking.ID
	e.RoomNumber = booking.RoomNumber
	e.Amount = amount
	e.Reason = string(reason)

	return e
}
