package store_test

import (
	"context"
	"errors"
	"hotel/config"
	"hotel/infras/otel/mocks"
	bookingModel "hotel/internal/domains/booking/model"
	guestModel "hotel/internal/domains/guest/model"
	paymentModel "hotel/internal/domains/payment/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/internal/store"
	storeMocks "hotel/internal/store/mocks"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUpdateCommitsOnlyOnSuccess(t *testing.T) {
	s := store.New(nil, mocks.NewOtel())

	err := s.Update(func(tx *store.Tx) error {
		tx.InsertRoom(roomModel.Room{Number: 101, Type: roomModel.TypeSingle, Price: 40})

		return nil
	})
	require.NoError(t, err)

	errRejected := errors.New("rejected")
	err = s.Update(func(tx *store.Tx) error {
		tx.InsertRoom(roomModel.Room{Number: 102, Type: roomModel.TypeSingle, Price: 40})
		tx.DeleteRoom(101)
		tx.InsertGuest(guestModel.Guest{FirstName: "Ada"})

		return errRejected
	})
	require.ErrorIs(t, err, errRejected)

	snapshot := s.Snapshot()
	require.Len(t, snapshot.Rooms, 1)
	assert.Equal(t, 101, snapshot.Rooms[0].Number)
	assert.Empty(t, snapshot.Guests)

	// the rolled back insert must not consume a guest ID
	_ = s.Update(func(tx *store.Tx) error {
		guest := tx.InsertGuest(guestModel.Guest{FirstName: "Ada"})
		assert.Equal(t, guestModel.FirstID, guest.ID)

		return nil
	})
}

func TestGuestIDsAreSequential(t *testing.T) {
	s := store.New(nil, mocks.NewOtel())

	var ids []int

	for range 3 {
		require.NoError(t, s.Update(func(tx *store.Tx) error {
			ids = append(ids, tx.InsertGuest(guestModel.Guest{}).ID)

			return nil
		}))
	}

	assert.Equal(t, []int{10001, 10002, 10003}, ids)
}

func TestBookingIDs(t *testing.T) {
	s := store.New(nil, mocks.NewOtel())

	require.NoError(t, s.Update(func(tx *store.Tx) error {
		first := tx.InsertBooking(bookingModel.Booking{RoomNumber: 101})
		assert.Equal(t, bookingModel.FirstID, first.ID)

		second := tx.InsertBooking(bookingModel.Booking{RoomNumber: 102})
		assert.Equal(t, 2, second.ID)

		assert.True(t, tx.DeleteBooking(first.ID))
		assert.False(t, tx.DeleteBooking(first.ID))

		third := tx.InsertBooking(bookingModel.Booking{RoomNumber: 103})
		assert.Equal(t, 3, third.ID)

		return nil
	}))
}

func TestReaderLookups(t *testing.T) {
	s := store.New(nil, mocks.NewOtel())

	require.NoError(t, s.Update(func(tx *store.Tx) error {
		tx.InsertRoom(roomModel.Room{Number: 101, Type: roomModel.TypeSingle})
		tx.InsertRoom(roomModel.Room{Number: 201, Type: roomModel.TypeDouble})
		tx.InsertRoom(roomModel.Room{Number: 102, Type: roomModel.TypeSingle})
		tx.InsertBooking(bookingModel.Booking{GuestID: 10001, RoomNumber: 101})
		tx.InsertBooking(bookingModel.Booking{GuestID: 10002, RoomNumber: 101})
		tx.InsertBooking(bookingModel.Booking{GuestID: 10001, RoomNumber: 201})

		return nil
	}))

	require.NoError(t, s.View(func(r *store.Reader) error {
		room, ok := r.Room(201)
		assert.True(t, ok)
		assert.Equal(t, roomModel.TypeDouble, room.Type)

		_, ok = r.Room(999)
		assert.False(t, ok)

		singles := r.RoomsOfType(roomModel.TypeSingle)
		assert.Len(t, singles, 2)

		assert.Len(t, r.BookingsForRoom(101), 2)
		assert.Len(t, r.BookingsForGuest(10001), 2)
		assert.Empty(t, r.BookingsForGuest(10003))

		return nil
	}))
}

func TestConcurrentUpdatesAreSerialised(t *testing.T) {
	s := store.New(nil, mocks.NewOtel())

	var wg sync.WaitGroup

	for range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_ = s.Update(func(tx *store.Tx) error {
				tx.InsertBooking(bookingModel.Booking{})

				return nil
			})
		}()
	}

	wg.Wait()

	bookings := s.Snapshot().Bookings
	require.Len(t, bookings, 50)

	seen := map[int]bool{}
	for _, b := range bookings {
		seen[b.ID] = true
	}

	assert.Len(t, seen, 50)
}

func TestLoadFailureLeavesCollectionEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	persister := storeMocks.NewMockPersister(ctrl)
	s := store.New(persister, mocks.NewOtel())

	persister.EXPECT().LoadRooms(gomock.Any()).Return([]roomModel.Room{{Number: 101}}, nil)
	persister.EXPECT().LoadRooms(gomock.Any()).Return(nil, errors.New("disk on fire"))

	count, err := s.Load(context.Background(), store.Rooms)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = s.Load(context.Background(), store.Rooms)
	require.Error(t, err)
	assert.Empty(t, s.Snapshot().Rooms)
}

func TestLoadGuestsReseedsSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	persister := storeMocks.NewMockPersister(ctrl)
	s := store.New(persister, mocks.NewOtel())

	persister.EXPECT().LoadGuests(gomock.Any()).Return([]guestModel.Guest{{ID: 10001}, {ID: 10042}, {ID: 10007}}, nil)

	_, err := s.Load(context.Background(), store.Guests)
	require.NoError(t, err)

	require.NoError(t, s.Update(func(tx *store.Tx) error {
		assert.Equal(t, 10043, tx.InsertGuest(guestModel.Guest{}).ID)

		return nil
	}))
}

func TestSaveAllAttemptsEveryEntity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	persister := storeMocks.NewMockPersister(ctrl)
	s := store.New(persister, mocks.NewOtel())

	persister.EXPECT().SaveRooms(gomock.Any(), gomock.Any()).Return(nil)
	persister.EXPECT().SaveGuests(gomock.Any(), gomock.Any()).Return(errors.New("read-only"))
	persister.EXPECT().SaveBookings(gomock.Any(), gomock.Any()).Return(nil)
	persister.EXPECT().SavePayments(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.SaveAll(context.Background())
	assert.Error(t, err)
}

func TestSaveUnknownEntity(t *testing.T) {
	s := store.New(nil, mocks.NewOtel())

	_, err := s.Save(context.Background(), store.Entity("towels"))
	assert.ErrorIs(t, err, store.ErrUnknownEntity)
}

func TestParseEntity(t *testing.T) {
	entity, err := store.ParseEntity(" Bookings ")
	require.NoError(t, err)
	assert.Equal(t, store.Bookings, entity)

	_, err = store.ParseEntity("towels")
	assert.ErrorIs(t, err, store.ErrUnknownEntity)
}

func TestFlatFileDriverRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.Store.Driver = "file"
	cfg.Store.File.Rooms = filepath.Join(dir, "rooms.txt")
	cfg.Store.File.Guests = filepath.Join(dir, "guests.txt")
	cfg.Store.File.Bookings = filepath.Join(dir, "bookings.txt")
	cfg.Store.File.Payments = filepath.Join(dir, "payments.txt")

	persister, cleanup, err := store.NewPersister(cfg, mocks.NewOtel())
	require.NoError(t, err)
	defer cleanup()

	source := store.New(persister, mocks.NewOtel())
	require.NoError(t, source.Update(func(tx *store.Tx) error {
		tx.InsertRoom(roomModel.Room{Number: 101, Type: roomModel.TypeSingle, Price: 45, Capacity: 1, Facilities: "TV"})
		guest := tx.InsertGuest(guestModel.Guest{FirstName: "Ada", LastName: "Lovelace", DateJoined: day(2024, 1, 1)})
		tx.InsertBooking(bookingModel.Booking{
			GuestID: guest.ID, RoomNumber: 101,
			BookingDate: day(2024, 1, 1), CheckinDate: day(2024, 1, 3), CheckoutDate: day(2024, 1, 5),
			TotalAmount: 90,
		})
		tx.InsertPayment(paymentModel.Payment{Date: day(2024, 1, 1), GuestID: guest.ID, Amount: 90, Reason: paymentModel.ReasonBooking})

		return nil
	}))

	counts, err := source.SaveAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, counts[store.Payments])

	target := store.New(persister, mocks.NewOtel())
	_, err = target.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, source.Snapshot(), target.Snapshot())
}

func TestLoadAllReportsMissingFiles(t *testing.T) {
	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.Store.File.Rooms = filepath.Join(dir, "rooms.txt")
	cfg.Store.File.Guests = filepath.Join(dir, "guests.txt")
	cfg.Store.File.Bookings = filepath.Join(dir, "bookings.txt")
	cfg.Store.File.Payments = filepath.Join(dir, "payments.txt")

	persister, _, err := store.NewPersister(cfg, mocks.NewOtel())
	require.NoError(t, err)

	counts, err := store.New(persister, mocks.NewOtel()).LoadAll(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 0, counts[store.Rooms])
}

func TestUnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Driver = "tape"

	_, _, err := store.NewPersister(cfg, mocks.NewOtel())
	assert.Error(t, err)
}
