package dto

import (
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"net/http"
	"strconv"
	"time"
)

type QueryParams struct {
	Page  int `json:"page"  validate:"omitempty"`
	Limit int `json:"limit" validate:"omitempty"`
}

// FromRequest populates QueryParams from the HTTP request.
// With defaultRequest set, missing page and limit fall back to their defaults;
// otherwise a zero limit means "everything".
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// DateRange is a stay expressed as ISO dates, checkout exclusive.
type DateRange struct {
	Checkin  string `json:"checkin"  validate:"required,isodate"`
	Checkout string `json:"checkout" validate:"required,isodate"`
}

func (d *DateRange) FromRequest(r *http.Request) {
	d.Checkin = r.URL.Query().Get(constant.RequestParamCheckin)
	d.Checkout = r.URL.Query().Get(constant.RequestParamCheckout)
}

// Parse returns both dates, rejecting anything that is not an ISO date or a
// checkin that is not strictly before checkout.
func (d DateRange) Parse() (checkin, checkout time.Time, err error) {
	checkin, err = timezone.ParseDate(d.Checkin)
	if err != nil {
		return checkin, checkout, failure.BadRequestFromString("invalid checkin date: " + d.Checkin) //nolint:wrapcheck
	}

	checkout, err = timezone.ParseDate(d.Checkout)
	if err != nil {
		return checkin, checkout, failure.BadRequestFromString("invalid checkout date: " + d.Checkout) //nolint:wrapcheck
	}

	if !checkin.Before(checkout) {
		return checkin, checkout, failure.InvalidDateRange
	}

	return checkin, checkout, nil
}
