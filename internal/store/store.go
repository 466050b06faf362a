package store

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotel/infras/otel"
	bookingModel "hotel/internal/domains/booking/model"
	guestModel "hotel/internal/domains/guest/model"
	paymentModel "hotel/internal/domains/payment/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/constant"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	otelAttrEntity = "store.entity"
	otelAttrCount  = "store.count"
)

// Entity names one of the four persisted collections.
type Entity string

const (
	Rooms    Entity = "rooms"
	Guests   Entity = "guests"
	Bookings Entity = "bookings"
	Payments Entity = "payments"
)

// Entities lists every collection in load order.
var Entities = []Entity{Rooms, Guests, Bookings, Payments}

var ErrUnknownEntity = errors.New("unknown entity")

func ParseEntity(value string) (Entity, error) {
	entity := Entity(strings.ToLower(strings.TrimSpace(value)))
	if !slices.Contains(Entities, entity) {
		return constant.Empty, fmt.Errorf("%w: %q", ErrUnknownEntity, value)
	}

	return entity, nil
}

// Persister moves whole collections between memory and durable storage.
type Persister interface {
	LoadRooms(ctx context.Context) ([]roomModel.Room, error)
	LoadGuests(ctx context.Context) ([]guestModel.Guest, error)
	LoadBookings(ctx context.Context) ([]bookingModel.Booking, error)
	LoadPayments(ctx context.Context) ([]paymentModel.Payment, error)
	SaveRooms(ctx context.Context, rooms []roomModel.Room) error
	SaveGuests(ctx context.Context, guests []guestModel.Guest) error
	SaveBookings(ctx context.Context, bookings []bookingModel.Booking) error
	SavePayments(ctx context.Context, payments []paymentModel.Payment) error
}

// Snapshot is a point-in-time copy of every collection.
type Snapshot struct {
	Rooms    []roomModel.Room
	Guests   []guestModel.Guest
	Bookings []bookingModel.Booking
	Payments []paymentModel.Payment
}

func (s Snapshot) clone() Snapshot {
	return Snapshot{
		Rooms:    slices.Clone(s.Rooms),
		Guests:   slices.Clone(s.Guests),
		Bookings: slices.Clone(s.Bookings),
		Payments: slices.Clone(s.Payments),
	}
}

// Store is the in-memory source of truth. Every read runs inside View and every
// mutation inside Update, so a check followed by an insert cannot interleave with
// another writer.
type Store struct {
	mu          sync.Mutex
	data        Snapshot
	nextGuestID int

	saveMu    sync.Mutex
	persister Persister
	otel      otel.Otel
}

func New(persister Persister, otel otel.Otel) *Store {
	return &Store{
		nextGuestID: guestModel.FirstID,
		persister:   persister,
		otel:        otel,
	}
}

// View runs fn against the live collections. fn must not retain the Reader.
func (s *Store) View(fn func(r *Reader) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(&Reader{data: &s.data})
}

// Update runs fn against a working copy of the collections and commits it only
// when fn returns nil. A failed update leaves the store untouched.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	tx := &Tx{Reader: Reader{data: &work}, nextGuestID: s.nextGuestID}

	if err := fn(tx); err != nil {
		return err
	}

	s.data = work
	s.nextGuestID = tx.nextGuestID

	return nil
}

// Snapshot copies every collection.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.clone()
}

// Load replaces one collection with what the persister holds. On failure the
// collection is left empty and the error is returned.
func (s *Store) Load(ctx context.Context, entity Entity) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrEntity, string(entity))

	switch entity {
	case Rooms:
		count, err = load(ctx, s, s.persister.LoadRooms, func(rooms []roomModel.Room) {
			s.data.Rooms = rooms
		})
	case Guests:
		count, err = load(ctx, s, s.persister.LoadGuests, func(guests []guestModel.Guest) {
			s.data.Guests = guests
			s.nextGuestID = nextGuestID(guests)
		})
	case Bookings:
		count, err = load(ctx, s, s.persister.LoadBookings, func(bookings []bookingModel.Booking) {
			s.data.Bookings = bookings
		})
	case Payments:
		count, err = load(ctx, s, s.persister.LoadPayments, func(payments []paymentModel.Payment) {
			s.data.Payments = payments
		})
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}

	if err != nil {
		log.Error().Err(err).Str("entity", string(entity)).Msg("failed to load collection, continuing with an empty one")

		return 0, fmt.Errorf("failed to load %s: %w", entity, err)
	}

	scope.SetAttribute(otelAttrCount, count)
	log.Info().Str("entity", string(entity)).Int("count", count).Msg("collection loaded")

	return count, nil
}

// LoadAll loads every collection, attempting all of them even when one fails.
func (s *Store) LoadAll(ctx context.Context) (map[Entity]int, error) {
	counts := make(map[Entity]int, len(Entities))

	var errs []error

	for _, entity := range Entities {
		count, err := s.Load(ctx, entity)
		if err != nil {
			errs = append(errs, err)
		}

		counts[entity] = count
	}

	return counts, errors.Join(errs...)
}

// Save writes one collection through the persister. The collection is copied
// under the lock and written outside it.
func (s *Store) Save(ctx context.Context, entity Entity) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrEntity, string(entity))

	snapshot := s.Snapshot()

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	switch entity {
	case Rooms:
		count, err = len(snapshot.Rooms), s.persister.SaveRooms(ctx, snapshot.Rooms)
	case Guests:
		count, err = len(snapshot.Guests), s.persister.SaveGuests(ctx, snapshot.Guests)
	case Bookings:
		count, err = len(snapshot.Bookings), s.persister.SaveBookings(ctx, snapshot.Bookings)
	case Payments:
		count, err = len(snapshot.Payments), s.persister.SavePayments(ctx, snapshot.Payments)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}

	if err != nil {
		log.Error().Err(err).Str("entity", string(entity)).Msg("failed to save collection")

		return 0, fmt.Errorf("failed to save %s: %w", entity, err)
	}

	scope.SetAttribute(otelAttrCount, count)
	log.Info().Str("entity", string(entity)).Int("count", count).Msg("collection saved")

	return count, nil
}

// SaveAll saves every collection, attempting all of them even when one fails.
func (s *Store) SaveAll(ctx context.Context) (map[Entity]int, error) {
	counts := make(map[Entity]int, len(Entities))

	var errs []error

	for _, entity := range Entities {
		count, err := s.Save(ctx, entity)
		if err != nil {
			errs = append(errs, err)
		}

		counts[entity] = count
	}

	return counts, errors.Join(errs...)
}

func load[T any](ctx context.Context, s *Store, fetch func(context.Context) ([]T, error), apply func([]T)) (int, error) {
	items, err := fetch(ctx)
	if err != nil {
		items = nil
	}

	s.mu.Lock()
	apply(items)
	s.mu.Unlock()

	return len(items), err
}

func nextGuestID(guests []guestModel.Guest) int {
	next := guestModel.FirstID

	for _, guest := range guests {
		next = max(next, guest.ID+1)
	}

	return next
}
