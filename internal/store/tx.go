package store

import (
	bookingModel "hotel/internal/domains/booking/model"
	guestModel "hotel/internal/domains/guest/model"
	paymentModel "hotel/internal/domains/payment/model"
	roomModel "hotel/internal/domains/room/model"
	"slices"
)

// Reader gives read access to the collections inside View or Update.
// Returned slices are copies.
type Reader struct {
	data *Snapshot
}

func (r *Reader) Rooms() []roomModel.Room {
	return slices.Clone(r.data.Rooms)
}

func (r *Reader) Room(number int) (roomModel.Room, bool) {
	i := slices.IndexFunc(r.data.Rooms, func(room roomModel.Room) bool { return room.Number == number })
	if i < 0 {
		return roomModel.Room{}, false
	}

	return r.data.Rooms[i], true
}

// RoomsOfType returns rooms of the given type in stored order.
func (r *Reader) RoomsOfType(roomType roomModel.Type) []roomModel.Room {
	var rooms []roomModel.Room

	for _, room := range r.data.Rooms {
		if room.Type == roomType {
			rooms = append(rooms, room)
		}
	}

	return rooms
}

func (r *Reader) Guests() []guestModel.Guest {
	return slices.Clone(r.data.Guests)
}

func (r *Reader) Guest(id int) (guestModel.Guest, bool) {
	i := slices.IndexFunc(r.data.Guests, func(guest guestModel.Guest) bool { return guest.ID == id })
	if i < 0 {
		return guestModel.Guest{}, false
	}

	return r.data.Guests[i], true
}

func (r *Reader) Bookings() []bookingModel.Booking {
	return slices.Clone(r.data.Bookings)
}

func (r *Reader) Booking(id int) (bookingModel.Booking, bool) {
	i := slices.IndexFunc(r.data.Bookings, func(booking bookingModel.Booking) bool { return booking.ID == id })
	if i < 0 {
		return bookingModel.Booking{}, false
	}

	return r.data.Bookings[i], true
}

func (r *Reader) BookingsForRoom(number int) []bookingModel.Booking {
	return r.filterBookings(func(booking bookingModel.Booking) bool { return booking.RoomNumber == number })
}

func (r *Reader) BookingsForGuest(guestID int) []bookingModel.Booking {
	return r.filterBookings(func(booking bookingModel.Booking) bool { return booking.GuestID == guestID })
}

func (r *Reader) Payments() []paymentModel.Payment {
	return slices.Clone(r.data.Payments)
}

func (r *Reader) filterBookings(keep func(bookingModel.Booking) bool) []bookingModel.Booking {
	var bookings []bookingModel.Booking

	for _, booking := range r.data.Bookings {
		if keep(booking) {
			bookings = append(bookings, booking)
		}
	}

	return bookings
}

// Tx extends Reader with mutations. Nothing is visible outside the Tx until
// the Update callback returns nil.
type Tx struct {
	Reader
	nextGuestID int
}

// InsertRoom appends room. Uniqueness of the number is the caller's check.
func (tx *Tx) InsertRoom(room roomModel.Room) {
	tx.data.Rooms = append(tx.data.Rooms, room)
}

func (tx *Tx) DeleteRoom(number int) bool {
	before := len(tx.data.Rooms)
	tx.data.Rooms = slices.DeleteFunc(tx.data.Rooms, func(room roomModel.Room) bool { return room.Number == number })

	return len(tx.data.Rooms) < before
}

// InsertGuest assigns the next guest ID and appends the guest.
func (tx *Tx) InsertGuest(guest guestModel.Guest) guestModel.Guest {
	guest.ID = tx.nextGuestID
	tx.nextGuestID++
	tx.data.Guests = append(tx.data.Guests, guest)

	return guest
}

func (tx *Tx) DeleteGuest(id int) bool {
	before := len(tx.data.Guests)
	tx.data.Guests = slices.DeleteFunc(tx.data.Guests, func(guest guestModel.Guest) bool { return guest.ID == id })

	return len(tx.data.Guests) < before
}

// InsertBooking assigns max(existing ID)+1, or FirstID on an empty store, and appends the booking.
func (tx *Tx) InsertBooking(booking bookingModel.Booking) bookingModel.Booking {
	booking.ID = bookingModel.FirstID

	for _, existing := range tx.data.Bookings {
		booking.ID = max(booking.ID, existing.ID+1)
	}

	tx.data.Bookings = append(tx.data.Bookings, booking)

	return booking
}

func (tx *Tx) DeleteBooking(id int) bool {
	before := len(tx.data.Bookings)
	tx.data.Bookings = slices.DeleteFunc(tx.data.Bookings, func(booking bookingModel.Booking) bool { return booking.ID == id })

	return len(tx.data.Bookings) < before
}

func (tx *Tx) InsertPayment(payment paymentModel.Payment) {
	tx.data.Payments = append(tx.data.Payments, payment)
}
