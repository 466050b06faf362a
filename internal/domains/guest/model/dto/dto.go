package dto

import (
	bookingDto "hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/guest/model"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"time"
)

// CreateGuestRequest registers a guest. Setting VIP, or either VIP date, asks for a
// membership; missing VIP dates default to a one-year membership starting today.
type CreateGuestRequest struct {
	FirstName     string `json:"first_name"      validate:"required,max=100,recordfield"`
	LastName      string `json:"last_name"       validate:"required,max=100,recordfield"`
	DateJoined    string `json:"date_joined"     validate:"omitempty,isodate"`
	VIP           bool   `json:"vip"`
	VIPStartDate  string `json:"vip_start_date"  validate:"omitempty,isodate"`
	VIPExpiryDate string `json:"vip_expiry_date" validate:"omitempty,isodate"`
}

func (c *CreateGuestRequest) IsVIP() bool {
	return c.VIP || c.VIPStartDate != constant.Empty || c.VIPExpiryDate != constant.Empty
}

// ToModel builds the guest without an ID. today fills in missing dates.
func (c *CreateGuestRequest) ToModel(today time.Time) (model.Guest, error) {
	joined, err := parseDateOr(c.DateJoined, today)
	if err != nil {
		return model.Guest{}, err
	}

	guest := model.Guest{
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		DateJoined: joined,
	}

	if !c.IsVIP() {
		return guest, nil
	}

	start, err := parseDateOr(c.VIPStartDate, today)
	if err != nil {
		return model.Guest{}, err
	}

	membership := model.NewVIPMembership(start)

	if c.VIPExpiryDate != constant.Empty {
		membership.ExpiryDate, err = timezone.ParseDate(c.VIPExpiryDate)
		if err != nil {
			return model.Guest{}, failure.BadRequestFromString("invalid VIP expiry date: " + c.VIPExpiryDate) //nolint:wrapcheck
		}
	}

	guest.VIP = &membership

	return guest, nil
}

func parseDateOr(value string, fallback time.Time) (time.Time, error) {
	if value == constant.Empty {
		return timezone.Date(fallback), nil
	}

	parsed, err := timezone.ParseDate(value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("invalid date: " + value) //nolint:wrapcheck
	}

	return parsed, nil
}

type SearchGuestsRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
}

type GuestResponse struct {
	ID            int    `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	DateJoined    string `json:"date_joined"`
	VIP           bool   `json:"vip"`
	VIPStartDate  string `json:"vip_start_date,omitempty"`
	VIPExpiryDate string `json:"vip_expiry_date,omitempty"`
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.DateJoined = timezone.FormatDate(model.DateJoined)
	r.VIP = model.IsVIP()

	if model.VIP != nil {
		r.VIPStartDate = timezone.FormatDate(model.VIP.StartDate)
		r.VIPExpiryDate = timezone.FormatDate(model.VIP.ExpiryDate)
	}
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}

// GuestWithBookingsResponse is one guest search hit together with the guest's bookings.
type GuestWithBookingsResponse struct {
	GuestResponse
	Bookings []bookingDto.BookingResponse `json:"bookings"`
}
