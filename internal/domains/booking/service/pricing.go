package service

import (
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/timezone"
	"time"
)

// Pricing turns a stay into an amount owed.
type Pricing struct {
	VIPDiscount float64
}

// Price is the nightly rate times the number of nights, reduced by the VIP
// discount when vipActive. The result is rounded to cents.
func (p Pricing) Price(room roomModel.Room, checkin, checkout time.Time, vipActive bool) float64 {
	total := room.Price * float64(timezone.DaysBetween(checkin, checkout))

	if vipActive {
		total *= 1 - p.VIPDiscount
	}

	return shared.RoundMoney(total)
}
