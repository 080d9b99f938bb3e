package model

import "github.com/shopspring/decimal"

const (
	EntityName = "catalog"

	MessageRoomNotFound    = "Room not found"
)

type Room struct {
	ID          int
	Name        string
	NightPrice  decimal.Decimal
	HourlyPrice decimal.Decimal
	Features    []string
	PetSize     string
	Description string
}

type GroomingService struct {
	ID          string
	Name        string
	Description string
}
