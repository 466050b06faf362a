package datastore

import (
	"hotel/infras/otel"
	"hotel/internal/domains/datastore/service"
	"hotel/shared/constant"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Datastore
	otel    otel.Otel
}

func New(service service.Datastore, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/datastore", func(routerGroup chi.Router) {
		routerGroup.Post("/load", handler.Load)
		routerGroup.Post("/save", handler.Save)
	})
}

// Load replaces in-memory collections with their persisted contents.
// @Summary Load collections
// @Tags Datastore
// @Produce json
// @Param entity query string false "rooms, guests, bookings or payments; all when omitted"
// @Success 200 {object} response.Data[dto.SyncResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/datastore/load [post]
func (handler *Handler) Load(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Load")
	defer scope.End()

	res, err := handler.service.Load(ctx, r.URL.Query().Get(constant.RequestParamEntity))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load datastore")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Save writes in-memory collections through the configured store driver.
// @Summary Save collections
// @Tags Datastore
// @Produce json
// @Param entity query string false "rooms, guests, bookings or payments; all when omitted"
// @Success 200 {object} response.Data[dto.SyncResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/datastore/save [post]
func (handler *Handler) Save(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Save")
	defer scope.End()

	res, err := handler.service.Save(ctx, r.URL.Query().Get(constant.RequestParamEntity))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save datastore")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
