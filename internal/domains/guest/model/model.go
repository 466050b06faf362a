package model

import (
	"fmt"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"strconv"
	"strings"
	"time"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID            = "id"
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldDateJoined    = "date_joined"
	FieldVIPStartDate  = "vip_start_date"
	FieldVIPExpiryDate = "vip_expiry_date"

	// FirstID is the ID handed to the first guest ever registered.
	FirstID = 10001

	regularRecordFields = 4
	vipRecordFields     = 6
)

// VIPMembership is a one-year paid membership granting a booking discount.
type VIPMembership struct {
	StartDate  time.Time
	ExpiryDate time.Time
}

// NewVIPMembership starts a membership on start that lasts exactly one year.
func NewVIPMembership(start time.Time) VIPMembership {
	start = timezone.Date(start)

	return VIPMembership{StartDate: start, ExpiryDate: start.AddDate(1, 0, 0)}
}

// Validate enforces expiry == start + 1 year.
func (m VIPMembership) Validate() error {
	if !timezone.Date(m.ExpiryDate).Equal(timezone.Date(m.StartDate).AddDate(1, 0, 0)) {
		return failure.BadRequestFromString("VIP membership must last exactly one year") //nolint:wrapcheck
	}

	return nil
}

// ActiveOn reports whether day lies within the membership, both ends inclusive.
func (m VIPMembership) ActiveOn(day time.Time) bool {
	return timezone.InRange(day, m.StartDate, m.ExpiryDate)
}

// Guest is either a regular guest (VIP == nil) or a VIP member.
type Guest struct {
	ID         int
	FirstName  string
	LastName   string
	DateJoined time.Time
	VIP        *VIPMembership
}

func (g Guest) IsVIP() bool {
	return g.VIP != nil
}

// DiscountOn reports whether the guest is entitled to the VIP discount on day.
func (g Guest) DiscountOn(day time.Time) bool {
	return g.VIP != nil && g.VIP.ActiveOn(day)
}

// MatchesName compares first and last name ignoring letter case.
func (g Guest) MatchesName(firstName, lastName string) bool {
	return strings.EqualFold(g.FirstName, firstName) && strings.EqualFold(g.LastName, lastName)
}

// Record renders id,first,last,joined and, for VIP members, vipStart,vipExpiry.
func (g Guest) Record() string {
	fields := []string{
		strconv.Itoa(g.ID),
		g.FirstName,
		g.LastName,
		timezone.FormatDate(g.DateJoined),
	}

	if g.VIP != nil {
		fields = append(fields, timezone.FormatDate(g.VIP.StartDate), timezone.FormatDate(g.VIP.ExpiryDate))
	}

	return strings.Join(fields, constant.Comma)
}

// ParseRecord is the inverse of Record; the field count tells regular from VIP guests.
func ParseRecord(line string) (Guest, error) {
	fields := strings.Split(line, constant.Comma)
	if len(fields) != regularRecordFields && len(fields) != vipRecordFields {
		return Guest{}, fmt.Errorf("guest record has %d fields, want %d or %d", len(fields), regularRecordFields, vipRecordFields)
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Guest{}, fmt.Errorf("invalid guest id %q: %w", fields[0], err)
	}

	joined, err := timezone.ParseDate(fields[3])
	if err != nil {
		return Guest{}, fmt.Errorf("invalid date joined %q: %w", fields[3], err)
	}

	guest := Guest{
		ID:         id,
		FirstName:  fields[1],
		LastName:   fields[2],
		DateJoined: joined,
	}

	if len(fields) == vipRecordFields {
		start, err := timezone.ParseDate(fields[4])
		if err != nil {
			return Guest{}, fmt.Errorf("invalid VIP start date %q: %w", fields[4], err)
		}

		expiry, err := timezone.ParseDate(fields[5])
		if err != nil {
			return Guest{}, fmt.Errorf("invalid VIP expiry date %q: %w", fields[5], err)
		}

		guest.VIP = &VIPMembership{StartDate: start, ExpiryDate: expiry}
	}

	return guest, nil
}
