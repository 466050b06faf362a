// Package pgstore keeps the collections in postgres, one table per entity.
// Every save replaces the whole table inside a single transaction.
package pgstore

import (
	"context"
	"database/sql"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	bookingModel "hotel/internal/domains/booking/model"
	guestModel "hotel/internal/domains/guest/model"
	paymentModel "hotel/internal/domains/payment/model"
	roomModel "hotel/internal/domains/room/model"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type guestRow struct {
	ID            int          `db:"id"`
	FirstName     string       `db:"first_name"`
	LastName      string       `db:"last_name"`
	DateJoined    time.Time    `db:"date_joined"`
	VIPStartDate  sql.NullTime `db:"vip_start_date"`
	VIPExpiryDate sql.NullTime `db:"vip_expiry_date"`
}

func toGuestRow(guest guestModel.Guest) guestRow {
	row := guestRow{
		ID:         guest.ID,
		FirstName:  guest.FirstName,
		LastName:   guest.LastName,
		DateJoined: guest.DateJoined,
	}

	if guest.VIP != nil {
		row.VIPStartDate = sql.NullTime{Time: guest.VIP.StartDate, Valid: true}
		row.VIPExpiryDate = sql.NullTime{Time: guest.VIP.ExpiryDate, Valid: true}
	}

	return row
}

func (row guestRow) toModel() guestModel.Guest {
	guest := guestModel.Guest{
		ID:         row.ID,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		DateJoined: utcDate(row.DateJoined),
	}

	if row.VIPStartDate.Valid && row.VIPExpiryDate.Valid {
		guest.VIP = &guestModel.VIPMembership{
			StartDate:  utcDate(row.VIPStartDate.Time),
			ExpiryDate: utcDate(row.VIPExpiryDate.Time),
		}
	}

	return guest
}

type Persister struct {
	db       *postgres.Connection
	rooms    table[roomModel.Room]
	guests   table[guestRow]
	bookings table[bookingModel.Booking]
	payments table[paymentModel.Payment]
}

func New(db *postgres.Connection, otel otel.Otel) *Persister {
	return &Persister{
		db:       db,
		rooms:    newTable[roomModel.Room](otel, roomModel.TableName, roomModel.FieldNumber),
		guests:   newTable[guestRow](otel, guestModel.TableName, guestModel.FieldID),
		bookings: newTable[bookingModel.Booking](otel, bookingModel.TableName, bookingModel.FieldID),
		payments: newTable[paymentModel.Payment](otel, paymentModel.TableName, "seq"),
	}
}

func (p *Persister) LoadRooms(ctx context.Context) ([]roomModel.Room, error) {
	return p.rooms.selectAll(ctx, p.db.Read)
}

func (p *Persister) LoadGuests(ctx context.Context) ([]guestModel.Guest, error) {
	rows, err := p.guests.selectAll(ctx, p.db.Read)
	if err != nil {
		return nil, err
	}

	guests := make([]guestModel.Guest, len(rows))
	for i, row := range rows {
		guests[i] = row.toModel()
	}

	return guests, nil
}

func (p *Persister) LoadBookings(ctx context.Context) ([]bookingModel.Booking, error) {
	bookings, err := p.bookings.selectAll(ctx, p.db.Read)
	if err != nil {
		return nil, err
	}

	for i := range bookings {
		bookings[i].BookingDate = utcDate(bookings[i].BookingDate)
		bookings[i].CheckinDate = utcDate(bookings[i].CheckinDate)
		bookings[i].CheckoutDate = utcDate(bookings[i].CheckoutDate)
	}

	return bookings, nil
}

func (p *Persister) LoadPayments(ctx context.Context) ([]paymentModel.Payment, error) {
	payments, err := p.payments.selectAll(ctx, p.db.Read)
	if err != nil {
		return nil, err
	}

	for i := range payments {
		payments[i].Date = utcDate(payments[i].Date)
	}

	return payments, nil
}

func (p *Persister) SaveRooms(ctx context.Context, rooms []roomModel.Room) error {
	return p.withTx(ctx, func(tx *sqlx.Tx) error {
		return p.rooms.replaceAll(ctx, tx, rooms)
	})
}

func (p *Persister) SaveGuests(ctx context.Context, guests []guestModel.Guest) error {
	rows := make([]guestRow, len(guests))
	for i, guest := range guests {
		rows[i] = toGuestRow(guest)
	}

	return p.withTx(ctx, func(tx *sqlx.Tx) error {
		return p.guests.replaceAll(ctx, tx, rows)
	})
}

func (p *Persister) SaveBookings(ctx context.Context, bookings []bookingModel.Booking) error {
	return p.withTx(ctx, func(tx *sqlx.Tx) error {
		return p.bookings.replaceAll(ctx, tx, bookings)
	})
}

func (p *Persister) SavePayments(ctx context.Context, payments []paymentModel.Payment) error {
	return p.withTx(ctx, func(tx *sqlx.Tx) error {
		return p.payments.replaceAll(ctx, tx, payments)
	})
}

func (p *Persister) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := p.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// utcDate normalises a DATE column, which lib/pq may return in a non-UTC location.
func utcDate(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
