package dto_test

import (
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoomRequest_ToModel(t *testing.T) {
	req := dto.CreateRoomRequest{Number: 301, Type: "Family", Price: 149.999, Capacity: 4, Facilities: "TV,kitchen"}

	room, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, model.Room{Number: 301, Type: model.TypeFamily, Price: 150, Capacity: 4, Facilities: "TV,kitchen"}, room)

	req.Type = "suite"
	_, err = req.ToModel()
	assert.True(t, failure.IsInvalidArgument(err))
}

func TestGetRoomsResponse_FromModels(t *testing.T) {
	var res dto.GetRoomsResponse
	res.FromModels([]model.Room{{Number: 101, Type: model.TypeSingle}}, 11, 10)

	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	require.Len(t, res.Rooms, 1)
	assert.Equal(t, "single", res.Rooms[0].Type)
}
