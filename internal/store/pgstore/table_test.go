package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"hotel/infras/otel/mocks"
	roomModel "hotel/internal/domains/room/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecer struct {
	queries []string
	args    []any
	failOn  string
}

func (r *recordingExecer) NamedExecContext(_ context.Context, query string, arg interface{}) (sql.Result, error) {
	r.queries = append(r.queries, query)
	r.args = append(r.args, arg)

	if r.failOn == "insert" {
		return nil, errors.New("insert failed")
	}

	return nil, nil
}

func (r *recordingExecer) ExecContext(_ context.Context, query string, _ ...any) (sql.Result, error) {
	r.queries = append(r.queries, query)

	if r.failOn == "delete" {
		return nil, errors.New("delete failed")
	}

	return nil, nil
}

func TestGetColumns(t *testing.T) {
	rooms := newTable[roomModel.Room](mocks.NewOtel(), roomModel.TableName, roomModel.FieldNumber)
	assert.Equal(t, []string{"number", "type", "price", "capacity", "facilities"}, rooms.columns)

	guests := newTable[guestRow](mocks.NewOtel(), "guests", "id")
	assert.Equal(t, []string{"id", "first_name", "last_name", "date_joined", "vip_start_date", "vip_expiry_date"}, guests.columns)
}

func TestReplaceAll(t *testing.T) {
	rooms := newTable[roomModel.Room](mocks.NewOtel(), roomModel.TableName, roomModel.FieldNumber)
	rows := []roomModel.Room{{Number: 101, Type: roomModel.TypeSingle, Price: 50, Capacity: 1}}

	exec := &recordingExecer{}
	require.NoError(t, rooms.replaceAll(context.Background(), exec, rows))
	assert.Equal(t, []string{
		"DELETE FROM rooms",
		"INSERT INTO rooms (number, type, price, capacity, facilities) VALUES (:number, :type, :price, :capacity, :facilities)",
	}, exec.queries)
	assert.Equal(t, []any{rows}, exec.args)

	empty := &recordingExecer{}
	require.NoError(t, rooms.replaceAll(context.Background(), empty, nil))
	assert.Equal(t, []string{"DELETE FROM rooms"}, empty.queries)

	assert.Error(t, rooms.replaceAll(context.Background(), &recordingExecer{failOn: "delete"}, rows))
	assert.Error(t, rooms.replaceAll(context.Background(), &recordingExecer{failOn: "insert"}, rows))
}

func TestGuestRowConversion(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	row := guestRow{
		ID:            10003,
		FirstName:     "Grace",
		LastName:      "Hopper",
		DateJoined:    time.Date(2024, 1, 5, 0, 0, 0, 0, loc),
		VIPStartDate:  sql.NullTime{Time: time.Date(2024, 2, 1, 0, 0, 0, 0, loc), Valid: true},
		VIPExpiryDate: sql.NullTime{Time: time.Date(2025, 2, 1, 0, 0, 0, 0, loc), Valid: true},
	}

	guest := row.toModel()
	require.NotNil(t, guest.VIP)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), guest.DateJoined)
	assert.NoError(t, guest.VIP.Validate())

	back := toGuestRow(guest)
	assert.True(t, back.VIPStartDate.Valid)

	guest.VIP = nil
	assert.False(t, toGuestRow(guest).VIPStartDate.Valid)
}
