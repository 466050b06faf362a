package service

import (
	"context"
	"errors"
	"hotel/config"
	"hotel/infras/otel"
	bookingDto "hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/guest/model"
	"hotel/internal/domains/guest/model/dto"
	paymentModel "hotel/internal/domains/payment/model"
	"hotel/internal/event"
	"hotel/internal/store"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

var errNegativeFee = errors.New("VIP membership fee must not be negative")

type Guest interface {
	AddGuest(ctx context.Context, req dto.CreateGuestRequest) (dto.GuestResponse, error)
	AddVIPGuest(ctx context.Context, req dto.CreateGuestRequest) (dto.GuestResponse, error)
	RemoveGuest(ctx context.Context, id int) error
	Get(ctx context.Context, id int) (dto.GuestResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetGuestsResponse, error)
	Search(ctx context.Context, req dto.SearchGuestsRequest) ([]dto.GuestWithBookingsResponse, error)
}

type serviceImpl struct {
	store     *store.Store
	publisher event.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(store *store.Store, publisher event.Publisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Guest {
	return &serviceImpl{
		store:     store,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// AddGuest registers a regular guest under the next guest ID.
func (s *serviceImpl) AddGuest(ctx context.Context, req dto.CreateGuestRequest) (res dto.GuestResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddGuest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.VIP, req.VIPStartDate, req.VIPExpiryDate = false, constant.Empty, constant.Empty

	guest, err := req.ToModel(timezone.Today())
	if err != nil {
		return res, err
	}

	err = s.store.Update(func(tx *store.Tx) error {
		guest = tx.InsertGuest(guest)

		return nil
	})
	if err != nil {
		return res, err
	}

	log.Info().Int("guestID", guest.ID).Msg("guest added")

	res.FromModel(guest)

	return res, nil
}

// AddVIPGuest registers a VIP member and charges the membership fee on the
// membership start date.
func (s *serviceImpl) AddVIPGuest(ctx context.Context, req dto.CreateGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddVIPGuest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.VIP = true

	guest, err := req.ToModel(timezone.Today())
	if err != nil {
		return res, err
	}

	if err = guest.VIP.Validate(); err != nil {
		return res, err
	}

	fee := shared.RoundMoney(s.cfg.App.Pricing.VIPMembershipFee)

	err = s.store.Update(func(tx *store.Tx) error {
		if fee < 0 {
			return errNegativeFee
		}

		guest = tx.InsertGuest(guest)

		tx.InsertPayment(paymentModel.Payment{
			Date:    guest.VIP.StartDate,
			GuestID: guest.ID,
			Amount:  fee,
			Reason:  paymentModel.ReasonVIPMembership,
		})

		return nil
	})
	if err != nil {
		return res, err
	}

	log.Info().Int("guestID", guest.ID).Msg("VIP guest added")

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyPaymentsOn)

	e := event.New(event.PaymentRecorded, guest.ID)
	e.Amount = fee
	e.Reason = string(paymentModel.ReasonVIPMembership)

	if err := s.publisher.Publish(ctx, e); err != nil {
		log.Error().Err(err).Msg("failed to publish membership payment")
	}

	res.FromModel(guest)

	return res, nil
}

// RemoveGuest refuses while the guest has a booking that starts after today.
func (s *serviceImpl) RemoveGuest(ctx context.Context, id int) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveGuest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	today := timezone.Today()

	err = s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Guest(id); !ok {
			return failure.NotFound("guest not found") // nolint:wrapcheck
		}

		for _, booking := range tx.BookingsForGuest(id) {
			if booking.CheckinDate.After(today) {
				return failure.Conflict("guest has an upcoming booking") // nolint:wrapcheck
			}
		}

		tx.DeleteGuest(id)

		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Int("guestID", id).Msg("guest removed")

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.GuestResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.store.View(func(r *store.Reader) error {
		guest, ok := r.Guest(id)
		if !ok {
			return failure.NotFound("guest not found") // nolint:wrapcheck
		}

		res.FromModel(guest)

		return nil
	})

	return res, err
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetGuestsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var guests []model.Guest

	_ = s.store.View(func(r *store.Reader) error {
		guests = r.Guests()

		return nil
	})

	res.FromModels(shared.Paginate(guests, params.Page, params.Limit), len(guests), params.Limit)

	return res, nil
}

// Search matches first and last name exactly, ignoring case, and attaches each hit's bookings.
func (s *serviceImpl) Search(ctx context.Context, req dto.SearchGuestsRequest) (res []dto.GuestWithBookingsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res = []dto.GuestWithBookingsResponse{}

	_ = s.store.View(func(r *store.Reader) error {
		for _, guest := range r.Guests() {
			if !guest.MatchesName(req.FirstName, req.LastName) {
				continue
			}

			var hit dto.GuestWithBookingsResponse
			hit.FromModel(guest)
			hit.Bookings = bookingDto.FromModels(r.BookingsForGuest(guest.ID))

			res = append(res, hit)
		}

		return nil
	})

	return res, nil
}
