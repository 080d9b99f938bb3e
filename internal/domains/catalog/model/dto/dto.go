package dto

import (
	"petcare/internal/domains/catalog/model"

	"github.com/shopspring/decimal"
)

type RoomResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	NightPrice  decimal.Decimal `json:"nightPrice"`
	HourlyPrice decimal.Decimal `json:"hourlyPrice"`
	Features    []string        `json:"features"`
	PetSize     string          `json:"petSize"`
	Description string          `json:"description"`
}

func (r *RoomResponse) FromModel(m model.Room) {
	r.ID = m.ID
	r.Name = m.Name
	r.NightPrice = m.NightPrice
	r.HourlyPrice = m.HourlyPrice
	r.Features = m.Features
	r.PetSize = m.PetSize
	r.Description = m.Description
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, m := range models {
		r.Rooms[i].FromModel(m)
	}
}

type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type GetServicesResponse struct {
	Services []ServiceResponse `json:"services"`
}

func (r *GetServicesResponse) FromModels(models []model.GroomingService) {
	r.Services = make([]ServiceResponse, len(models))
	for i, m := range models {
		r.Services[i] = ServiceResponse{ID: m.ID, Name: m.Name, Description: m.Description}
	}
}
