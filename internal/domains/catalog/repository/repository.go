package repository

import (
	"context"
	"petcare/internal/domains/catalog/model"
	"slices"

	"github.com/shopspring/decimal"
)

// Catalog reads the fixed room and grooming offer. Entries never change at runtime.
type Catalog interface {
	GetRooms(ctx context.Context) []model.Room
	GetRoom(ctx context.Context, id int) (model.Room, bool)
	GetServices(ctx context.Context) []model.GroomingService
}

var rooms = []model.Room{
	{
		ID:          1,
		Name:        "Cozy Den",
		NightPrice:  decimal.NewFromInt(49),
		HourlyPrice: decimal.NewFromInt(8),
		Features:    []string{"Comfortable pet bed", "Climate controlled", "Basic toys", "2 meals/day", "Daily cleaning"},
		PetSize:     "Small pets (up to 20 lbs)",
		Description: "A snug, comfortable space perfect for small pets who enjoy cozy environments",
	},
	{
		ID:          2,
		Name:        "Deluxe Suite",
		NightPrice:  decimal.NewFromInt(79),
		HourlyPrice: decimal.NewFromInt(12),
		Features:    []string{"Spacious play area", "Premium pet bed", "Toy selection", "3 meals/day", "Window view", "Daily grooming"},
		PetSize:     "Medium pets (20-50 lbs)",
		Description: "A roomy suite with dedicated play space and premium amenities",
	},
	{
		ID:          3,
		Name:        "Royal Palace",
		NightPrice:  decimal.NewFromInt(129),
		HourlyPrice: decimal.NewFromInt(20),
		Features: []string{
			"Extra large suite", "Luxury orthopedic bed", "Premium toys", "4 meals/day",
			"24/7 Webcam", "Private play area", "Spa services",
		},
		PetSize:     "Large pets (50+ lbs)",
		Description: "The ultimate in pet luxury with maximum space and premium services",
	},
}

var services = []model.GroomingService{
	{ID: "basic-grooming", Name: "Basic Grooming", Description: "Bath, brush, nail trim and ear cleaning"},
	{ID: "full-grooming", Name: "Full Grooming", Description: "Basic grooming plus breed-specific haircut and styling"},
	{ID: "spa-package", Name: "Spa Package", Description: "Full grooming with a relaxing massage, paw balm and coat treatment"},
}

type repositoryImpl struct{}

func New() Catalog {
	return &repositoryImpl{}
}

// GetRooms returns a copy so callers cannot edit the offer.
func (r *repositoryImpl) GetRooms(context.Context) []model.Room {
	out := make([]model.Room, len(rooms))
	for i, room := range rooms {
		room.Features = slices.Clone(room.Features)
		out[i] = room
	}

	return out
}

func (r *repositoryImpl) GetRoom(_ context.Context, id int) (model.Room, bool) {
	idx := slices.IndexFunc(rooms, func(room model.Room) bool { return room.ID == id })
	if idx < 0 {
		return model.Room{}, false
	}

	room := rooms[idx]
	room.Features = slices.Clone(room.Features)

	return room, true
}

func (r *repositoryImpl) GetServices(context.Context) []model.GroomingService {
	return slices.Clone(services)
}
