package service

import (
	bookingModel "hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/internal/store"
	"hotel/shared/failure"
	"slices"
	"time"
)

func validateStay(checkin, checkout time.Time) error {
	if !checkin.Before(checkout) {
		return failure.InvalidDateRange
	}

	return nil
}

// isFree reports whether none of bookings overlaps [checkin, checkout).
func isFree(bookings []bookingModel.Booking, checkin, checkout time.Time) bool {
	for _, booking := range bookings {
		if booking.Overlaps(checkin, checkout) {
			return false
		}
	}

	return true
}

// availableRooms lists, in ascending order, the rooms of roomType that are free for the whole stay.
func availableRooms(r *store.Reader, roomType roomModel.Type, checkin, checkout time.Time) []int {
	var numbers []int

	for _, room := range r.RoomsOfType(roomType) {
		if isFree(r.BookingsForRoom(room.Number), checkin, checkout) {
			numbers = append(numbers, room.Number)
		}
	}

	slices.Sort(numbers)

	return numbers
}
