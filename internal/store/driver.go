package store

import (
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/store/flatfile"
	"hotel/internal/store/pgstore"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

// NewPersister picks the storage driver named by STORE_DRIVER.
func NewPersister(config *config.Config, otel otel.Otel) (Persister, func(), error) {
	switch config.Store.Driver {
	case constant.StoreDriverFile, constant.Empty:
		log.Info().Str("rooms", config.Store.File.Rooms).Msg("Using flat file store")

		return flatfile.New(config, otel), func() {}, nil
	case constant.StoreDriverPostgres:
		conn, err := postgres.New(config)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect store database: %w", err)
		}

		cleanup := func() {
			if err := conn.Write.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close write connection")
			}

			if err := conn.Read.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close read connection")
			}
		}

		log.Info().Msg("Using postgres store")

		return pgstore.New(conn, otel), cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", config.Store.Driver)
	}
}
