package service

import (
	"context"
	"petcare/infras/otel"
	"petcare/internal/domains/catalog/model"
	"petcare/internal/domains/catalog/model/dto"
	"petcare/internal/domains/catalog/repository"
	"petcare/shared/constant"
	"petcare/shared/failure"
)

type Catalog interface {
	GetRooms(ctx context.Context) dto.GetRoomsResponse
	GetRoom(ctx context.Context, id int) (dto.RoomResponse, error)
	GetServices(ctx context.Context) dto.GetServicesResponse
}

type serviceImpl struct {
	repo repository.Catalog
	otel otel.Otel
}

func New(repo repository.Catalog, otel otel.Otel) Catalog {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetRooms(ctx context.Context) (res dto.GetRoomsResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRooms")
	defer scope.End()

	res.FromModels(s.repo.GetRooms(ctx))

	return res
}

func (s *serviceImpl) GetRoom(ctx context.Context, id int) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, ok := s.repo.GetRoom(ctx, id)
	if !ok {
		return res, failure.NotFound(model.MessageRoomNotFound) // nolint:wrapcheck
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetServices(ctx context.Context) (res dto.GetServicesResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetServices")
	defer scope.End()

	res.FromModels(s.repo.GetServices(ctx))

	return res
}
