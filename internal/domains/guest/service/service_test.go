package service_test

import (
	"context"
	"errors"
	"hotel/config"
	"hotel/infras/otel/mocks"
	bookingModel "hotel/internal/domains/booking/model"
	"hotel/internal/domains/guest/model"
	"hotel/internal/domains/guest/model/dto"
	"hotel/internal/domains/guest/service"
	paymentModel "hotel/internal/domains/payment/model"
	eventMocks "hotel/internal/event/mocks"
	"hotel/internal/store"
	cacheMocks "hotel/shared/cache/mocks"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func day(n int) time.Time {
	return timezone.Today().AddDate(0, 0, n)
}

func newService(t *testing.T) (service.Guest, *store.Store, *eventMocks.MockPublisher) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	mockPublisher := eventMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.App.Pricing.VIPMembershipFee = 50

	s := store.New(nil, mocks.NewOtel())

	return service.New(s, mockPublisher, cfg, mockCache, mocks.NewOtel()), s, mockPublisher
}

func TestGuestService_AddGuest(t *testing.T) {
	svc, s, _ := newService(t)
	ctx := context.Background()

	first, err := svc.AddGuest(ctx, dto.CreateGuestRequest{FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)
	assert.Equal(t, model.FirstID, first.ID)
	assert.False(t, first.VIP)
	assert.Equal(t, timezone.FormatDate(day(0)), first.DateJoined)

	// VIP fields are ignored on the regular path
	second, err := svc.AddGuest(ctx, dto.CreateGuestRequest{FirstName: "Alan", LastName: "Turing", VIP: true})
	require.NoError(t, err)
	assert.Equal(t, model.FirstID+1, second.ID)
	assert.False(t, second.VIP)

	assert.Empty(t, s.Snapshot().Payments)
}

func TestGuestService_AddVIPGuestStoreFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.Pricing.VIPMembershipFee = -50

	s := store.New(nil, mocks.NewOtel())
	svc := service.New(s, eventMocks.NewMockPublisher(ctrl), cfg, cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel())

	res, err := svc.AddVIPGuest(ctx, dto.CreateGuestRequest{
		FirstName: "Grace", LastName: "Hopper", VIPStartDate: "2024-03-01", VIPExpiryDate: "2025-03-01",
	})
	require.Error(t, err)
	assert.Zero(t, res.ID)

	snapshot := s.Snapshot()
	assert.Empty(t, snapshot.Guests)
	assert.Empty(t, snapshot.Payments)

	// the aborted insert did not consume a guest ID
	next, err := svc.AddGuest(ctx, dto.CreateGuestRequest{FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)
	assert.Equal(t, model.FirstID, next.ID)
}

func TestGuestService_AddVIPGuest(t *testing.T) {
	ctx := context.Background()

	t.Run("charges the membership fee on the start date", func(t *testing.T) {
		svc, s, publisher := newService(t)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		res, err := svc.AddVIPGuest(ctx, dto.CreateGuestRequest{
			FirstName: "Grace", LastName: "Hopper", VIPStartDate: "2024-03-01", VIPExpiryDate: "2025-03-01",
		})
		require.NoError(t, err)
		assert.True(t, res.VIP)

		snapshot := s.Snapshot()
		require.Len(t, snapshot.Guests, 1)
		require.Len(t, snapshot.Payments, 1)
		assert.Equal(t, paymentModel.Payment{
			Date:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			GuestID: res.ID,
			Amount:  50,
			Reason:  paymentModel.ReasonVIPMembership,
		}, snapshot.Payments[0])
	})

	t.Run("rejects a membership that is not one year", func(t *testing.T) {
		svc, s, _ := newService(t)

		_, err := svc.AddVIPGuest(ctx, dto.CreateGuestRequest{
			FirstName: "Grace", LastName: "Hopper", VIPStartDate: "2024-03-01", VIPExpiryDate: "2025-02-28",
		})
		assert.True(t, failure.IsInvalidArgument(err))

		snapshot := s.Snapshot()
		assert.Empty(t, snapshot.Guests)
		assert.Empty(t, snapshot.Payments)
	})

	t.Run("defaults to a year from today", func(t *testing.T) {
		svc, _, publisher := newService(t)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.AddVIPGuest(ctx, dto.CreateGuestRequest{FirstName: "Alan", LastName: "Turing"})
		require.NoError(t, err)
		assert.Equal(t, timezone.FormatDate(day(0)), res.VIPStartDate)
		assert.Equal(t, timezone.FormatDate(day(0).AddDate(1, 0, 0)), res.VIPExpiryDate)
	})
}

func TestGuestService_RemoveGuest(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		checkin time.Time
		wantErr func(error) bool
	}{
		{name: "no bookings", wantErr: nil},
		{name: "booking starting tomorrow blocks removal", checkin: day(1), wantErr: failure.IsConflict},
		{name: "booking starting today does not block", checkin: day(0), wantErr: nil},
		{name: "past booking does not block", checkin: day(-5), wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, s, _ := newService(t)

			guest, err := svc.AddGuest(ctx, dto.CreateGuestRequest{FirstName: "Ada", LastName: "Lovelace"})
			require.NoError(t, err)

			if !tt.checkin.IsZero() {
				require.NoError(t, s.Update(func(tx *store.Tx) error {
					tx.InsertBooking(bookingModel.Booking{GuestID: guest.ID, RoomNumber: 101, CheckinDate: tt.checkin, CheckoutDate: tt.checkin.AddDate(0, 0, 2)})

					return nil
				}))
			}

			err = svc.RemoveGuest(ctx, guest.ID)

			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err))
				assert.Len(t, s.Snapshot().Guests, 1)
			} else {
				require.NoError(t, err)
				assert.Empty(t, s.Snapshot().Guests)
			}
		})
	}

	t.Run("unknown guest", func(t *testing.T) {
		svc, _, _ := newService(t)

		assert.True(t, failure.IsNotFound(svc.RemoveGuest(ctx, 10001)))
	})
}

func TestGuestService_SearchAndList(t *testing.T) {
	svc, s, _ := newService(t)
	ctx := context.Background()

	ada, err := svc.AddGuest(ctx, dto.CreateGuestRequest{FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)

	_, err = svc.AddGuest(ctx, dto.CreateGuestRequest{FirstName: "ADA", LastName: "lovelace"})
	require.NoError(t, err)

	_, err = svc.AddGuest(ctx, dto.CreateGuestRequest{FirstName: "Ada", LastName: "Byron"})
	require.NoError(t, err)

	require.NoError(t, s.Update(func(tx *store.Tx) error {
		tx.InsertBooking(bookingModel.Booking{GuestID: ada.ID, RoomNumber: 101, CheckinDate: day(1), CheckoutDate: day(2), TotalAmount: 50})

		return nil
	}))

	hits, err := svc.Search(ctx, dto.SearchGuestsRequest{FirstName: "ada", LastName: "LOVELACE"})
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, ada.ID, hits[0].ID)
	assert.Len(t, hits[0].Bookings, 1)
	assert.Empty(t, hits[1].Bookings)

	none, err := svc.Search(ctx, dto.SearchGuestsRequest{FirstName: "Charles", LastName: "Babbage"})
	require.NoError(t, err)
	assert.Empty(t, none)

	got, err := svc.Get(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lovelace", got.LastName)

	_, err = svc.Get(ctx, 1)
	assert.True(t, failure.IsNotFound(err))

	all, err := svc.GetAll(ctx, gDto.QueryParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, all.TotalData)
	assert.Len(t, all.Guests, 2)
}
