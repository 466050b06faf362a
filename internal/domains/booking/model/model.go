package model

import (
	"fmt"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"strconv"
	"strings"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldGuestID      = "guest_id"
	FieldRoomNumber   = "room_number"
	FieldBookingDate  = "booking_date"
	FieldCheckinDate  = "checkin_date"
	FieldCheckoutDate = "checkout_date"
	FieldTotalAmount  = "total_amount"

	// FirstID is assigned when the store holds no bookings yet.
	FirstID = 1

	// NoRoomAvailable is returned in place of a room number when nothing of the requested type is free.
	NoRoomAvailable = -1

	recordFields = 7
)

type Booking struct {
	ID           int       `db:"id"`
	GuestID      int       `db:"guest_id"`
	RoomNumber   int       `db:"room_number"`
	BookingDate  time.Time `db:"booking_date"`
	CheckinDate  time.Time `db:"checkin_date"`
	CheckoutDate time.Time `db:"checkout_date"`
	TotalAmount  float64   `db:"total_amount"`
}

// Nights is the length of the stay.
func (b Booking) Nights() int {
	return timezone.DaysBetween(b.CheckinDate, b.CheckoutDate)
}

// Overlaps reports whether the half-open stay [checkin, checkout) shares a night with b.
// Two stays conflict when the span covering both is shorter than their combined length,
// so a checkout on the day of the next checkin is not a conflict.
func (b Booking) Overlaps(checkin, checkout time.Time) bool {
	start := b.CheckinDate
	if checkin.Before(start) {
		start = checkin
	}

	end := b.CheckoutDate
	if checkout.After(end) {
		end = checkout
	}

	span := timezone.DaysBetween(start, end)

	return span < b.Nights()+timezone.DaysBetween(checkin, checkout)
}

// Covers reports whether day lies within [checkin, checkout].
func (b Booking) Covers(day time.Time) bool {
	return timezone.InRange(day, b.CheckinDate, b.CheckoutDate)
}

func (b Booking) Record() string {
	return strings.Join([]string{
		strconv.Itoa(b.ID),
		strconv.Itoa(b.GuestID),
		strconv.Itoa(b.RoomNumber),
		timezone.FormatDate(b.BookingDate),
		timezone.FormatDate(b.CheckinDate),
		timezone.FormatDate(b.CheckoutDate),
		shared.FormatMoney(b.TotalAmount),
	}, constant.Comma)
}

func ParseRecord(line string) (Booking, error) {
	fields := strings.Split(line, constant.Comma)
	if len(fields) != recordFields {
		return Booking{}, fmt.Errorf("booking record has %d fields, want %d", len(fields), recordFields)
	}

	ints := make([]int, 3) //nolint:mnd

	for i := range ints {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return Booking{}, fmt.Errorf("invalid booking field %d %q: %w", i+1, fields[i], err)
		}

		ints[i] = v
	}

	dates := make([]time.Time, 3) //nolint:mnd

	for i := range dates {
		v, err := timezone.ParseDate(fields[3+i])
		if err != nil {
			return Booking{}, fmt.Errorf("invalid booking date %q: %w", fields[3+i], err)
		}

		dates[i] = v
	}

	total, err := strconv.ParseFloat(fields[6], 64)
	if err != nil {
		return Booking{}, fmt.Errorf("invalid booking total %q: %w", fields[6], err)
	}

	return Booking{
		ID:           ints[0],
		GuestID:      ints[1],
		RoomNumber:   ints[2],
		BookingDate:  dates[0],
		CheckinDate:  dates[1],
		CheckoutDate: dates[2],
		TotalAmount:  shared.RoundMoney(total),
	}, nil
}
