package flatfile_test

import (
	"context"
	"hotel/infras/otel/mocks"
	bookingModel "hotel/internal/domains/booking/model"
	guestModel "hotel/internal/domains/guest/model"
	paymentModel "hotel/internal/domains/payment/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/internal/store/flatfile"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPersister(t *testing.T) (*flatfile.Persister, flatfile.Paths) {
	t.Helper()

	dir := t.TempDir()
	paths := flatfile.Paths{
		Rooms:    filepath.Join(dir, "data", "rooms.txt"),
		Guests:   filepath.Join(dir, "data", "guests.txt"),
		Bookings: filepath.Join(dir, "data", "bookings.txt"),
		Payments: filepath.Join(dir, "data", "payments.txt"),
	}

	return flatfile.NewWithPaths(paths, mocks.NewOtel()), paths
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	persister, _ := newPersister(t)

	membership := guestModel.NewVIPMembership(day(2024, 1, 1))
	rooms := []roomModel.Room{
		{Number: 101, Type: roomModel.TypeSingle, Price: 55, Capacity: 1, Facilities: "TV"},
		{Number: 201, Type: roomModel.TypeFamily, Price: 120.5, Capacity: 4, Facilities: "TV,bath,balcony"},
	}
	guests := []guestModel.Guest{
		{ID: 10001, FirstName: "Ada", LastName: "Lovelace", DateJoined: day(2023, 1, 1)},
		{ID: 10002, FirstName: "Alan", LastName: "Turing", DateJoined: day(2023, 6, 1), VIP: &membership},
	}
	bookings := []bookingModel.Booking{
		{ID: 1, GuestID: 10001, RoomNumber: 101, BookingDate: day(2024, 1, 2), CheckinDate: day(2024, 2, 1), CheckoutDate: day(2024, 2, 3), TotalAmount: 110},
	}
	payments := []paymentModel.Payment{
		{Date: day(2024, 1, 1), GuestID: 10002, Amount: 50, Reason: paymentModel.ReasonVIPMembership},
		{Date: day(2024, 1, 2), GuestID: 10001, Amount: 110, Reason: paymentModel.ReasonBooking},
	}

	require.NoError(t, persister.SaveRooms(ctx, rooms))
	require.NoError(t, persister.SaveGuests(ctx, guests))
	require.NoError(t, persister.SaveBookings(ctx, bookings))
	require.NoError(t, persister.SavePayments(ctx, payments))

	gotRooms, err := persister.LoadRooms(ctx)
	require.NoError(t, err)
	assert.Equal(t, rooms, gotRooms)

	gotGuests, err := persister.LoadGuests(ctx)
	require.NoError(t, err)
	assert.Equal(t, guests, gotGuests)

	gotBookings, err := persister.LoadBookings(ctx)
	require.NoError(t, err)
	assert.Equal(t, bookings, gotBookings)

	gotPayments, err := persister.LoadPayments(ctx)
	require.NoError(t, err)
	assert.Equal(t, payments, gotPayments)
}

func TestSaveWritesOneRecordPerLine(t *testing.T) {
	persister, paths := newPersister(t)

	require.NoError(t, persister.SaveRooms(context.Background(), []roomModel.Room{
		{Number: 101, Type: roomModel.TypeSingle, Price: 55, Capacity: 1, Facilities: "TV"},
		{Number: 102, Type: roomModel.TypeTwin, Price: 70.25, Capacity: 2, Facilities: "TV,desk"},
	}))

	raw, err := os.ReadFile(paths.Rooms)
	require.NoError(t, err)
	assert.Equal(t, "101,single,55.00,1,TV\n102,twin,70.25,2,TV,desk\n", string(raw))

	entries, err := os.ReadDir(filepath.Dir(paths.Rooms))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestLoadMissingFile(t *testing.T) {
	persister, _ := newPersister(t)

	rooms, err := persister.LoadRooms(context.Background())
	assert.Error(t, err)
	assert.Empty(t, rooms)
}

func TestDecodeSkipsBlankLinesAndReportsLineNumber(t *testing.T) {
	items, err := flatfile.Decode(strings.NewReader("101,single,55.00,1,TV\n\n102,double,80,2,\r\n"), roomModel.ParseRecord)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = flatfile.Decode(strings.NewReader("101,single,55.00,1,TV\n102,suite,80,2,\n"), roomModel.ParseRecord)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestEncodeEmpty(t *testing.T) {
	assert.Empty(t, flatfile.Encode([]paymentModel.Payment{}))
}
