package payment

import (
	"hotel/infras/otel"
	"hotel/internal/domains/payment/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/transport/http/response"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPayments)
		routerGroup.Get("/on", handler.GetPaymentsOn)
	})
}

// GetPayments lists the ledger in the order payments were recorded.
// @Summary Get all payments
// @Tags Payment
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetPaymentsResponse]
// @Router /v1/payments [get]
func (handler *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	payments, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, payments)
}

// GetPaymentsOn reports the payments of one day, as JSON or as an xlsx workbook.
// @Summary Get payments on a date
// @Tags Payment
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param format query string false "Set to xlsx for a workbook"
// @Success 200 {object} response.Data[dto.PaymentsReport]
// @Failure 400 {object} response.Error
// @Router /v1/payments/on [get]
func (handler *Handler) GetPaymentsOn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentsOn")
	defer scope.End()

	value := r.URL.Query().Get(constant.RequestParamDate)

	date, err := shared.ConvertStringToDate(value)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if strings.EqualFold(r.URL.Query().Get(constant.RequestParamFormat), constant.FormatXLSX) {
		data, err := handler.service.ExportPaymentsOn(ctx, date)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to export payments")

			response.WithError(w, err)

			return
		}

		response.WithFile(w, constant.ContentTypeExcel, "payments-"+value+"."+constant.FormatXLSX, data)

		return
	}

	report, err := handler.service.PaymentsOn(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments on date")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, report)
}
