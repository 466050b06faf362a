package scheduler

import (
	"context"
	"hotel/config"
	"hotel/internal/domains/datastore/service"
	"hotel/shared/constant"

	"github.com/jasonlvhit/gocron"
	"github.com/rs/zerolog/log"
)

// Autosave periodically saves every collection of the data store.
type Autosave struct {
	config    *config.Config
	datastore service.Datastore
	scheduler *gocron.Scheduler
	stopped   chan bool
}

func New(cfg *config.Config, datastore service.Datastore) *Autosave {
	return &Autosave{
		config:    cfg,
		datastore: datastore,
		scheduler: gocron.NewScheduler(),
	}
}

// Start schedules the autosave job. It is a no-op when autosave is disabled.
func (a *Autosave) Start() error {
	autosave := a.config.Store.Autosave
	if !autosave.Enable {
		log.Info().Msg("Data store autosave disabled")

		return nil
	}

	if err := a.scheduler.Every(autosave.IntervalMinutes).Minutes().Do(a.Run); err != nil {
		log.Error().Err(err).Msg("Failed to schedule data store autosave")

		return err //nolint:wrapcheck
	}

	a.stopped = a.scheduler.Start()

	log.Info().Uint64("interval_minutes", autosave.IntervalMinutes).Msg("Data store autosave scheduled")

	return nil
}

// Run saves the data store once.
func (a *Autosave) Run() {
	res, err := a.datastore.Save(context.Background(), constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("Autosave failed")

		return
	}

	log.Info().Interface("collections", res.Collections).Msg("Autosave completed")
}

func (a *Autosave) Stop() {
	a.scheduler.Clear()

	if a.stopped != nil {
		close(a.stopped)
		a.stopped = nil
	}
}
