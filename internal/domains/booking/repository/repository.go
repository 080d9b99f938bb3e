package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"petcare/infras/otel"
	"petcare/infras/postgres"
	"petcare/internal/domains/booking/model"
	gDto "petcare/shared/dto"
	gRepo "petcare/shared/repository"
)

type ServiceBooking interface {
	Insert(ctx context.Context, model model.ServiceBooking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ServiceBooking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ServiceBooking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CountBy(ctx context.Context, column string, filter gDto.FilterGroup) (map[string]int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type RoomBooking interface {
	Insert(ctx context.Context, model model.RoomBooking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomBooking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomBooking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CountBy(ctx context.Context, column string, filter gDto.FilterGroup) (map[string]int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type serviceBookingRepository struct {
	gRepo.Repository[model.ServiceBooking]
	db   *postgres.Connection
	otel otel.Otel
}

func NewServiceBooking(db *postgres.Connection, otel otel.Otel) ServiceBooking {
	return &serviceBookingRepository{
		Repository: gRepo.NewRepository[model.ServiceBooking](model.ServiceEntityName, model.ServiceTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type roomBookingRepository struct {
	gRepo.Repository[model.RoomBooking]
	db   *postgres.Connection
	otel otel.Otel
}

func NewRoomBooking(db *postgres.Connection, otel otel.Otel) RoomBooking {
	return &roomBookingRepository{
		Repository: gRepo.NewRepository[model.RoomBooking](model.RoomEntityName, model.RoomTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
