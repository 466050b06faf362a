package di

import (
	"hotel/internal/store"
	"hotel/transport/http"
	"hotel/transport/scheduler"
)

// App is everything cmd/app needs to run the service.
type App struct {
	HTTP     *http.HTTP
	Store    *store.Store
	Autosave *scheduler.Autosave
}
