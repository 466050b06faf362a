package dto

import (
	"hotel/internal/domains/room/model"
	"hotel/shared"
)

type CreateRoomRequest struct {
	Number     int     `json:"number"     validate:"required,gt=0"`
	Type       string  `json:"type"       validate:"required,roomtype"`
	Price      float64 `json:"price"      validate:"required,gt=0"`
	Capacity   int     `json:"capacity"   validate:"required,gt=0"`
	Facilities string  `json:"facilities" validate:"omitempty,max=255,singleline"`
}

func (c *CreateRoomRequest) ToModel() (model.Room, error) {
	roomType, err := model.ParseType(c.Type)
	if err != nil {
		return model.Room{}, err
	}

	return model.Room{
		Number:     c.Number,
		Type:       roomType,
		Price:      shared.RoundMoney(c.Price),
		Capacity:   c.Capacity,
		Facilities: c.Facilities,
	}, nil
}

type RoomResponse struct {
	Number     int     `json:"number"`
	Type       string  `json:"type"`
	Price      float64 `json:"price"`
	Capacity   int     `json:"capacity"`
	Facilities string  `json:"facilities"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.Number = model.Number
	r.Type = string(model.Type)
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Facilities = model.Facilities
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type AvailableRoomsResponse struct {
	Type     string `json:"type"`
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
	Rooms    []int  `json:"rooms"`
}

type AvailabilityResponse struct {
	Number    int    `json:"number"`
	Checkin   string `json:"checkin"`
	Checkout  string `json:"checkout"`
	Available bool   `json:"available"`
}
