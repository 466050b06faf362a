package scheduler_test

import (
	"errors"
	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	s3Mocks "hotel/infras/s3/mocks"
	"hotel/internal/domains/datastore/service"
	"hotel/internal/store"
	storeMocks "hotel/internal/store/mocks"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/transport/scheduler"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAutosave(t *testing.T, cfg *config.Config) (*scheduler.Autosave, *storeMocks.MockPersister) {
	t.Helper()

	ctrl := gomock.NewController(t)
	persister := storeMocks.NewMockPersister(ctrl)
	ot := otelMocks.NewOtel()

	datastore := service.New(store.New(persister, ot), s3Mocks.NewMockS3(ctrl), cfg, cacheMocks.NewMockRedisCache(ctrl), ot)

	return scheduler.New(cfg, datastore), persister
}

func TestAutosave_Run(t *testing.T) {
	autosave, persister := newAutosave(t, &config.Config{})

	persister.EXPECT().SaveRooms(gomock.Any(), gomock.Any()).Return(nil)
	persister.EXPECT().SaveGuests(gomock.Any(), gomock.Any()).Return(errors.New("read-only filesystem"))
	persister.EXPECT().SaveBookings(gomock.Any(), gomock.Any()).Return(nil)
	persister.EXPECT().SavePayments(gomock.Any(), gomock.Any()).Return(nil)

	autosave.Run()
}

func TestAutosave_StartDisabled(t *testing.T) {
	autosave, _ := newAutosave(t, &config.Config{})

	assert.NoError(t, autosave.Start())
	autosave.Stop()
}

func TestAutosave_StartEnabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Autosave.Enable = true
	cfg.Store.Autosave.IntervalMinutes = 15

	autosave, _ := newAutosave(t, cfg)

	assert.NoError(t, autosave.Start())
	autosave.Stop()
}
