package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	s3Mocks "hotel/infras/s3/mocks"
	bookingService "hotel/internal/domains/booking/service"
	datastoreService "hotel/internal/domains/datastore/service"
	guestService "hotel/internal/domains/guest/service"
	paymentService "hotel/internal/domains/payment/service"
	roomService "hotel/internal/domains/room/service"
	eventMocks "hotel/internal/event/mocks"
	bookingHandler "hotel/internal/handlers/booking"
	datastoreHandler "hotel/internal/handlers/datastore"
	guestHandler "hotel/internal/handlers/guest"
	paymentHandler "hotel/internal/handlers/payment"
	roomHandler "hotel/internal/handlers/room"
	"hotel/internal/store"
	"hotel/internal/store/flatfile"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/random"
	"hotel/shared/timezone"
	transport "hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) *transport.HTTP {
	t.Helper()

	ctrl := gomock.NewController(t)
	ot := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.Pricing.VIPDiscount = 0.10
	cfg.App.Pricing.VIPMembershipFee = 50
	cfg.App.RefundNoticeDays = 2

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	publisher := eventMocks.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	dir := t.TempDir()
	persister := flatfile.NewWithPaths(flatfile.Paths{
		Rooms:    filepath.Join(dir, "rooms.txt"),
		Guests:   filepath.Join(dir, "guests.txt"),
		Bookings: filepath.Join(dir, "bookings.txt"),
		Payments: filepath.Join(dir, "payments.txt"),
	}, ot)
	s := store.New(persister, ot)

	booking := bookingService.New(s, random.Fixed(0), publisher, cfg, mockCache, ot)

	handlers := router.DomainHandlers{
		Room:      roomHandler.New(roomService.New(s, cfg, mockCache, ot), booking, ot),
		Guest:     guestHandler.New(guestService.New(s, publisher, cfg, mockCache, ot), booking, ot),
		Booking:   bookingHandler.New(booking, ot),
		Payment:   paymentHandler.New(paymentService.New(s, cfg, mockCache, ot), ot),
		Datastore: datastoreHandler.New(datastoreService.New(s, s3Mocks.NewMockS3(ctrl), cfg, mockCache, ot), ot),
	}

	return transport.New(cfg, router.New(handlers, middleware.NewAppMiddleware(ot, cfg, mockCache)), s, ot)
}

func do(t *testing.T, srv http.Handler, method, target string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reader).Encode(body))
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(method, target, &reader))

	var payload map[string]any
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	}

	return rec, payload
}

func TestHTTP_BookingFlow(t *testing.T) {
	srv := newServer(t)

	checkin := timezone.FormatDate(timezone.Today().AddDate(0, 0, 10))
	checkout := timezone.FormatDate(timezone.Today().AddDate(0, 0, 12))

	rec, _ := do(t, srv, http.MethodPost, "/v1/rooms", map[string]any{"number": 101, "type": "single", "price": 50, "capacity": 1, "facilities": "TV, WiFi"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec, _ = do(t, srv, http.MethodPost, "/v1/rooms", map[string]any{"number": 101, "type": "double", "price": 80, "capacity": 2})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, payload := do(t, srv, http.MethodPost, "/v1/guests", map[string]any{"first_name": "Ada", "last_name": "Lovelace"})
	require.Equal(t, http.StatusCreated, rec.Code)

	guest, ok := payload["data"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 10001, guest["id"], 0)

	booking := map[string]any{"guest_id": 10001, "room_type": "single", "checkin": checkin, "checkout": checkout}

	rec, payload = do(t, srv, http.MethodPost, "/v1/bookings", booking)
	require.Equal(t, http.StatusCreated, rec.Code)

	booked, ok := payload["data"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 101, booked["room_number"], 0)
	assert.InDelta(t, 100, booked["total_amount"], 0.001)

	rec, _ = do(t, srv, http.MethodPost, "/v1/bookings", booking)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, payload = do(t, srv, http.MethodGet, "/v1/rooms/101/availability?checkin="+checkin+"&checkout="+checkout, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, payload["data"].(map[string]any)["available"])

	rec, _ = do(t, srv, http.MethodDelete, "/v1/rooms/101", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, payload = do(t, srv, http.MethodDelete, "/v1/bookings/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["data"].(map[string]any)["refunded"])

	rec, _ = do(t, srv, http.MethodGet, "/v1/payments/on?date="+timezone.FormatDate(timezone.Today())+"&format=xlsx", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")

	rec, payload = do(t, srv, http.MethodPost, "/v1/datastore/save", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, payload["data"].(map[string]any)["collections"], 4)
}

func TestHTTP_BadInput(t *testing.T) {
	srv := newServer(t)

	tests := []struct {
		name   string
		method string
		target string
		body   any
		want   int
	}{
		{name: "non numeric room", method: http.MethodGet, target: "/v1/rooms/abc", want: http.StatusBadRequest},
		{name: "unknown room", method: http.MethodGet, target: "/v1/rooms/999", want: http.StatusNotFound},
		{name: "reversed stay", method: http.MethodGet, target: "/v1/rooms/available?type=single&checkin=2030-01-05&checkout=2030-01-01", want: http.StatusBadRequest},
		{name: "available without type", method: http.MethodGet, target: "/v1/rooms/available?checkin=2030-01-01&checkout=2030-01-05", want: http.StatusBadRequest},
		{name: "available unknown type", method: http.MethodGet, target: "/v1/rooms/available?type=suite&checkin=2030-01-01&checkout=2030-01-05", want: http.StatusBadRequest},
		{name: "unknown room type", method: http.MethodPost, target: "/v1/rooms", body: map[string]any{"number": 1, "type": "suite", "price": 10, "capacity": 1}, want: http.StatusBadRequest},
		{name: "comma in name", method: http.MethodPost, target: "/v1/guests", body: map[string]any{"first_name": "A,B", "last_name": "C"}, want: http.StatusBadRequest},
		{name: "bad date", method: http.MethodGet, target: "/v1/bookings/on?date=yesterday", want: http.StatusBadRequest},
		{name: "unknown entity", method: http.MethodPost, target: "/v1/datastore/load?entity=invoices", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, payload := do(t, srv, tt.method, tt.target, tt.body)

			assert.Equal(t, tt.want, rec.Code)
			assert.NotEmpty(t, payload["error"])
		})
	}
}

func TestHTTP_Health(t *testing.T) {
	srv := newServer(t)

	rec, _ := do(t, srv, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, transport.ServerStateReady, srv.State())
}
