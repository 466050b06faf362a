package service

import (
	"context"
	"errors"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/s3"
	"hotel/internal/domains/datastore/model/dto"
	"hotel/internal/store"
	"hotel/internal/store/flatfile"
	"hotel/shared"
	"hotel/shared/breaker"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"path"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

const (
	backupBreakerName = "s3-backup"
	backupFileExt     = ".txt"
	backupStampFormat = "20060102T150405Z"
)

type Datastore interface {
	// Load replaces one collection, or all of them when entity is empty.
	Load(ctx context.Context, entity string) (dto.SyncResponse, error)
	// Save persists one collection, or all of them when entity is empty.
	Save(ctx context.Context, entity string) (dto.SyncResponse, error)
}

type serviceImpl struct {
	store   *store.Store
	s3      s3.S3
	breaker *gobreaker.CircuitBreaker
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(store *store.Store, s3 s3.S3, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Datastore {
	return &serviceImpl{
		store:   store,
		s3:      s3,
		breaker: breaker.New(backupBreakerName),
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) Load(ctx context.Context, entity string) (res dto.SyncResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	entities, err := parseEntities(entity)
	if err != nil {
		return res, err
	}

	counts, err := s.apply(ctx, entities, s.store.Load)

	// a failed load still empties the collection, so caches are stale either way
	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyAvailableRooms)
	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyPaymentsOn)

	if err != nil {
		return res, err
	}

	res.FromCounts(counts)

	return res, nil
}

func (s *serviceImpl) Save(ctx context.Context, entity string) (res dto.SyncResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	entities, err := parseEntities(entity)
	if err != nil {
		return res, err
	}

	counts, err := s.apply(ctx, entities, s.store.Save)
	if err != nil {
		return res, err
	}

	res.FromCounts(counts)

	if s.cfg.Store.Backup.Enable {
		res.Backups = s.backup(ctx, entities)
	}

	return res, nil
}

func (s *serviceImpl) apply(ctx context.Context, entities []store.Entity, fn func(context.Context, store.Entity) (int, error)) (map[store.Entity]int, error) {
	counts := make(map[store.Entity]int, len(entities))

	var errs []error

	for _, entity := range entities {
		count, err := fn(ctx, entity)
		if err != nil {
			errs = append(errs, err)
		}

		counts[entity] = count
	}

	return counts, errors.Join(errs...)
}

// backup uploads the current contents of each entity in the flat-file format.
// Upload failures are logged and skipped.
func (s *serviceImpl) backup(ctx context.Context, entities []store.Entity) []string {
	snapshot := s.store.Snapshot()
	directory := path.Join(s.cfg.Store.Backup.Directory, timezone.Now().UTC().Format(backupStampFormat))

	var locations []string

	for _, entity := range entities {
		data := encode(snapshot, entity)

		location, err := s.breaker.Execute(func() (any, error) {
			return s.s3.UploadFileBytes(ctx, constant.Empty, directory, string(entity)+backupFileExt, constant.ContentTypeText, data)
		})
		if err != nil {
			log.Error().Err(err).Str("entity", string(entity)).Msg("failed to back up collection")

			continue
		}

		if url, ok := location.(string); ok {
			locations = append(locations, url)
		}
	}

	return locations
}

func encode(snapshot store.Snapshot, entity store.Entity) []byte {
	switch entity {
	case store.Rooms:
		return flatfile.Encode(snapshot.Rooms)
	case store.Guests:
		return flatfile.Encode(snapshot.Guests)
	case store.Bookings:
		return flatfile.Encode(snapshot.Bookings)
	case store.Payments:
		return flatfile.Encode(snapshot.Payments)
	}

	return nil
}

func parseEntities(value string) ([]store.Entity, error) {
	if value == constant.Empty {
		return store.Entities, nil
	}

	entity, err := store.ParseEntity(value)
	if err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	return []store.Entity{entity}, nil
}
