package service

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/store"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"slices"

	"github.com/rs/zerolog/log"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, number int) (dto.RoomResponse, error)
	Delete(ctx context.Context, number int) error
}

type serviceImpl struct {
	store *store.Store
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(store *store.Store, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		store: store,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Create adds a room. Room numbers are unique.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := req.ToModel()
	if err != nil {
		return err
	}

	if room.Price <= 0 {
		return failure.BadRequestFromString("price must be greater than 0") // nolint:wrapcheck
	}

	err = s.store.Update(func(tx *store.Tx) error {
		if _, exists := tx.Room(room.Number); exists {
			return failure.Conflict(fmt.Sprintf("room %d already exists", room.Number)) // nolint:wrapcheck
		}

		tx.InsertRoom(room)

		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Int("room", room.Number).Str("type", string(room.Type)).Msg("room added")

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyAvailableRooms)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetRoomsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var rooms []model.Room

	_ = s.store.View(func(r *store.Reader) error {
		rooms = r.Rooms()

		return nil
	})

	slices.SortFunc(rooms, func(a, b model.Room) int { return a.Number - b.Number })

	res.FromModels(shared.Paginate(rooms, params.Page, params.Limit), len(rooms), params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, number int) (res dto.RoomResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.store.View(func(r *store.Reader) error {
		room, ok := r.Room(number)
		if !ok {
			return failure.NotFound("room not found") // nolint:wrapcheck
		}

		res.FromModel(room)

		return nil
	})

	return res, err
}

// Delete refuses while any booking references the room.
func (s *serviceImpl) Delete(ctx context.Context, number int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Room(number); !ok {
			return failure.NotFound("room not found") // nolint:wrapcheck
		}

		if bookings := tx.BookingsForRoom(number); len(bookings) > 0 {
			return failure.Conflict(fmt.Sprintf("room %d has %d booking(s)", number, len(bookings))) // nolint:wrapcheck
		}

		tx.DeleteRoom(number)

		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Int("room", number).Msg("room removed")

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyAvailableRooms)

	return nil
}
