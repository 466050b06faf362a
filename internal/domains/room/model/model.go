package model

import (
	"fmt"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"strconv"
	"strings"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldNumber     = "number"
	FieldType       = "type"
	FieldPrice      = "price"
	FieldCapacity   = "capacity"
	FieldFacilities = "facilities"

	recordFields = 5
)

type Type string

const (
	TypeSingle Type = constant.RoomTypeSingle
	TypeDouble Type = constant.RoomTypeDouble
	TypeFamily Type = constant.RoomTypeFamily
	TypeTwin   Type = constant.RoomTypeTwin
)

// Types lists every room type, in the order of constant.RoomTypes.
var Types = func() []Type {
	types := make([]Type, len(constant.RoomTypes))
	for i, name := range constant.RoomTypes {
		types[i] = Type(name)
	}

	return types
}()

// ParseType accepts a room type name in any letter case.
func ParseType(value string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(value)))

	for _, known := range Types {
		if t == known {
			return t, nil
		}
	}

	return constant.Empty, failure.BadRequestFromString(fmt.Sprintf("invalid room type %q", value)) //nolint:wrapcheck
}

type Room struct {
	Number     int     `db:"number"`
	Type       Type    `db:"type"`
	Price      float64 `db:"price"`
	Capacity   int     `db:"capacity"`
	Facilities string  `db:"facilities"`
}

// Record renders the room as a flat-file line: number,type,price,capacity,facilities.
func (r Room) Record() string {
	return strings.Join([]string{
		strconv.Itoa(r.Number),
		string(r.Type),
		shared.FormatMoney(r.Price),
		strconv.Itoa(r.Capacity),
		r.Facilities,
	}, constant.Comma)
}

// ParseRecord is the inverse of Record. Facilities is the trailing field and may contain commas.
func ParseRecord(line string) (Room, error) {
	fields := strings.SplitN(line, constant.Comma, recordFields)
	if len(fields) != recordFields {
		return Room{}, fmt.Errorf("room record has %d fields, want %d", len(fields), recordFields)
	}

	number, err := strconv.Atoi(fields[0])
	if err != nil {
		return Room{}, fmt.Errorf("invalid room number %q: %w", fields[0], err)
	}

	roomType, err := ParseType(fields[1])
	if err != nil {
		return Room{}, err
	}

	price, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Room{}, fmt.Errorf("invalid room price %q: %w", fields[2], err)
	}

	capacity, err := strconv.Atoi(fields[3])
	if err != nil {
		return Room{}, fmt.Errorf("invalid room capacity %q: %w", fields[3], err)
	}

	return Room{
		Number:     number,
		Type:       roomType,
		Price:      shared.RoundMoney(price),
		Capacity:   capacity,
		Facilities: fields[4],
	}, nil
}
