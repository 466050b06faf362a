package service

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/payment/model"
	"hotel/internal/domains/payment/model/dto"
	"hotel/internal/store"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const reportSheet = "Payments"

type Payment interface {
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetPaymentsResponse, error)
	PaymentsOn(ctx context.Context, date time.Time) (dto.PaymentsReport, error)
	ExportPaymentsOn(ctx context.Context, date time.Time) ([]byte, error)
}

type serviceImpl struct {
	store *store.Store
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(store *store.Store, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Payment {
	return &serviceImpl{
		store: store,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetAll pages through the ledger in insertion order.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetPaymentsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var payments []model.Payment

	_ = s.store.View(func(r *store.Reader) error {
		payments = r.Payments()

		return nil
	})

	res.FromModels(shared.Paginate(payments, params.Page, params.Limit), len(payments), params.Limit)

	return res, nil
}

func (s *serviceImpl) PaymentsOn(ctx context.Context, date time.Time) (res dto.PaymentsReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PaymentsOn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	date = timezone.Date(date)
	day := timezone.FormatDate(date)
	cacheKey := shared.BuildCacheKey(constant.CacheKeyPaymentsOn, day)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payments report")

		return res, nil
	}

	var payments []model.Payment

	_ = s.store.View(func(r *store.Reader) error {
		for _, payment := range r.Payments() {
			if payment.Date.Equal(date) {
				payments = append(payments, payment)
			}
		}

		return nil
	})

	res.FromModels(day, payments)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save payments report to cache")
	}

	return res, nil
}

// ExportPaymentsOn renders the PaymentsOn report as an xlsx workbook.
func (s *serviceImpl) ExportPaymentsOn(ctx context.Context, date time.Time) (_ []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportPaymentsOn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	report, err := s.PaymentsOn(ctx, date)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close workbook")
		}
	}()

	if err = f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"Date", "Guest", "Amount", "Reason"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err = f.SetCellValue(reportSheet, cell, header); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for i, payment := range report.Payments {
		row := []any{payment.Date, payment.GuestID, payment.Amount, payment.Reason}

		cell, _ := excelize.CoordinatesToCellName(1, i+2) //nolint:mnd
		if err = f.SetSheetRow(reportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write payment row: %w", err)
		}
	}

	totalRow := len(report.Payments) + 3 //nolint:mnd
	if err = f.SetSheetRow(reportSheet, fmt.Sprintf("A%d", totalRow), &[]any{"Total", nil, report.Total}); err != nil {
		return nil, fmt.Errorf("write total row: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}

	log.Info().Str("date", report.Date).Int("payments", len(report.Payments)).Msg("payments report exported")

	return buf.Bytes(), nil
}
