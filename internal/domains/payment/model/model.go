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
	TableName  = "payments"
	EntityName = "payment"

	FieldDate    = "date"
	FieldGuestID = "guest_id"
	FieldAmount  = "amount"
	FieldReason  = "reason"

	recordFields = 4
)

// Reason tags what a payment was made for. It is the only link between a payment and its cause.
type Reason string

const (
	ReasonBooking       Reason = "booking"
	ReasonVIPMembership Reason = "VIPmembership"
	ReasonRefund        Reason = "refund"
)

// Payment is append-only. Refunds carry a negative amount.
type Payment struct {
	Date    time.Time `db:"date"`
	GuestID int       `db:"guest_id"`
	Amount  float64   `db:"amount"`
	Reason  Reason    `db:"reason"`
}

func (p Payment) Record() string {
	return strings.Join([]string{
		timezone.FormatDate(p.Date),
		strconv.Itoa(p.GuestID),
		shared.FormatMoney(p.Amount),
		string(p.Reason),
	}, constant.Comma)
}

func ParseRecord(line string) (Payment, error) {
	fields := strings.Split(line, constant.Comma)
	if len(fields) != recordFields {
		return Payment{}, fmt.Errorf("payment record has %d fields, want %d", len(fields), recordFields)
	}

	day, err := timezone.ParseDate(fields[0])
	if err != nil {
		return Payment{}, fmt.Errorf("invalid payment date %q: %w", fields[0], err)
	}

	guestID, err := strconv.Atoi(fields[1])
	if err != nil {
		return Payment{}, fmt.Errorf("invalid payment guest id %q: %w", fields[1], err)
	}

	amount, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Payment{}, fmt.Errorf("invalid payment amount %q: %w", fields[2], err)
	}

	return Payment{
		Date:    day,
		GuestID: guestID,
		Amount:  shared.RoundMoney(amount),
		Reason:  Reason(fields[3]),
	}, nil
}
