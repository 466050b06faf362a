package dto

import (
	"hotel/internal/domains/booking/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	"hotel/shared/timezone"
)

type BookRoomRequest struct {
	GuestID  int    `json:"guest_id"  validate:"required,gt=0"`
	RoomType string `json:"room_type" validate:"required,roomtype"`
	gDto.DateRange
}

// BookRoomResponse carries RoomNumber == model.NoRoomAvailable when nothing was free.
type BookRoomResponse struct {
	BookingID   int     `json:"booking_id,omitempty"`
	RoomNumber  int     `json:"room_number"`
	TotalAmount float64 `json:"total_amount,omitempty"`
}

func (r BookRoomResponse) Booked() bool {
	return r.RoomNumber != model.NoRoomAvailable
}

type CheckOutRequest struct {
	Date string `json:"date" validate:"required,isodate"`
}

type CancelResponse struct {
	BookingID    int     `json:"booking_id"`
	Refunded     bool    `json:"refunded"`
	RefundAmount float64 `json:"refund_amount,omitempty"`
}

type QuoteResponse struct {
	RoomNumber  int     `json:"room_number"`
	Nights      int     `json:"nights"`
	VIPDiscount bool    `json:"vip_discount"`
	TotalAmount float64 `json:"total_amount"`
}

type BookingResponse struct {
	ID          int     `json:"id"`
	GuestID     int     `json:"guest_id"`
	RoomNumber  int     `json:"room_number"`
	BookingDate string  `json:"booking_date"`
	Checkin     string  `json:"checkin"`
	Checkout    string  `json:"checkout"`
	Nights      int     `json:"nights"`
	TotalAmount float64 `json:"total_amount"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.RoomNumber = model.RoomNumber
	r.BookingDate = timezone.FormatDate(model.BookingDate)
	r.Checkin = timezone.FormatDate(model.CheckinDate)
	r.Checkout = timezone.FormatDate(model.CheckoutDate)
	r.Nights = model.Nights()
	r.TotalAmount = model.TotalAmount
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Bookings = FromModels(models)
}
