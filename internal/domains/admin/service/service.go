package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"petcare/config"
	"petcare/infras/jwt"
	"petcare/infras/otel"
	"petcare/internal/domains/admin/model/dto"
	"petcare/internal/domains/booking/event"
	"petcare/internal/domains/booking/model"
	"petcare/internal/domains/booking/pricing"
	"petcare/internal/domains/booking/repository"
	"petcare/shared"
	"petcare/shared/cache"
	"petcare/shared/constant"
	gDto "petcare/shared/dto"
	"petcare/shared/failure"
	"petcare/shared/password"
	"petcare/shared/timezone"
	"petcare/shared/validator"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Admin interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	ListAllBookings(ctx context.Context) ([]dto.BookingEntry, error)
	SetStatus(ctx context.Context, id string, req dto.SetStatusRequest) (dto.BookingEntry, error)
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	serviceRepo repository.ServiceBooking
	roomRepo    repository.RoomBooking
	jwtService  jwt.JWT
	events      event.Publisher
	clock       timezone.Clock
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	serviceRepo repository.ServiceBooking,
	roomRepo repository.RoomBooking,
	jwtService jwt.JWT,
	events event.Publisher,
	clock timezone.Clock,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Admin {
	return &serviceImpl{
		serviceRepo: serviceRepo,
		roomRepo:    roomRepo,
		jwtService:  jwtService,
		events:      events,
		clock:       clock,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Login checks the configured principal. The hash comparison runs whether or not the username
// matched, and every mismatch gets the same answer. There is no lockout.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.Admin.Username)) == 1

	passwordErr := password.Verify(req.Password, s.cfg.Admin.PasswordHash)
	if passwordErr != nil && !errors.Is(passwordErr, password.ErrInvalidPassword) {
		log.Error().Err(passwordErr).Msg("failed to verify admin password")
	}

	if !usernameMatch || passwordErr != nil || s.cfg.Admin.Username == "" {
		log.Warn().Str("username", req.Username).Msg("failed admin login attempt")

		return res, failure.InvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(s.cfg.Admin.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate admin token")

		return res, fmt.Errorf("failed to generate admin token: %w", err)
	}

	res.FromToken(token)

	return res, nil
}

type timedEntry struct {
	createdAt time.Time
	entry     dto.BookingEntry
}

// ListAllBookings returns both kinds merged, newest first.
func (s *serviceImpl) ListAllBookings(ctx context.Context) (res []dto.BookingEntry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAllBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	services, err := s.serviceRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get service bookings")

		return nil, fmt.Errorf("failed to get service bookings: %w", err)
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get room bookings")

		return nil, fmt.Errorf("failed to get room bookings: %w", err)
	}

	merged := make([]timedEntry, 0, len(services)+len(rooms))

	for _, booking := range services {
		item := timedEntry{createdAt: booking.CreatedAt}
		item.entry.FromServiceModel(booking)
		merged = append(merged, item)
	}

	for _, booking := range rooms {
		item := timedEntry{createdAt: booking.CreatedAt}
		item.entry.FromRoomModel(booking)
		merged = append(merged, item)
	}

	slices.SortStableFunc(merged, func(a, b timedEntry) int {
		return b.createdAt.Compare(a.createdAt)
	})

	res = make([]dto.BookingEntry, len(merged))
	for i, item := range merged {
		res[i] = item.entry
	}

	return res, nil
}

// SetStatus writes any lifecycle status without consulting the transition rules. It is the
// manual correction path, so every use is logged with the status it replaced.
func (s *serviceImpl) SetStatus(ctx context.Context, id string, req dto.SetStatusRequest) (res dto.BookingEntry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if _, err = uuid.Parse(id); err != nil {
		return res, failure.NotFound(model.MessageNotFound) // nolint:wrapcheck
	}

	status, err := model.ParseStatus(req.Status)
	if err != nil {
		return res, failure.Validation([]string{err.Error()}) // nolint:wrapcheck
	}

	now := s.clock()
	actor, _ := ctx.Value(constant.ContextKeyAdminSubject).(string)

	serviceBooking, err := s.serviceRepo.Get(ctx, shared.FilterByID(id, model.FieldID, model.ServiceTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service booking")

		return res, fmt.Errorf("failed to get service booking: %w", err)
	}

	if serviceBooking.ID != constant.Empty {
		previous := serviceBooking.Override(status)

		fields := shared.TransformFields(model.StatusUpdate{Status: status}, actor, now)
		if err = s.serviceRepo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.ServiceTableName)); err != nil {
			log.Error().Err(err).Msg("failed to override service booking status")

			return res, fmt.Errorf("failed to override service booking status: %w", err)
		}

		s.logOverride(actor, serviceBooking.Core, previous)
		s.afterWrite(ctx, model.KindService, serviceBooking.Core, previous, now)

		res.FromServiceModel(serviceBooking)

		return res, nil
	}

	roomBooking, err := s.roomRepo.Get(ctx, shared.FilterByID(id, model.FieldID, model.RoomTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room booking")

		return res, fmt.Errorf("failed to get room booking: %w", err)
	}

	if roomBooking.ID == constant.Empty {
		return res, failure.NotFound(model.MessageNotFound) // nolint:wrapcheck
	}

	previous := roomBooking.Override(status)

	if err = pricing.Apply(&roomBooking); err != nil {
		log.Error().Err(err).Str("reference", roomBooking.ReferenceNumber).Msg("failed to price room booking")

		return res, fmt.Errorf("failed to price room booking: %w", err)
	}

	fields := shared.TransformFields(model.StatusUpdate{Status: status}, actor, now)
	fields[model.FieldTotalNights] = roomBooking.TotalNights
	fields[model.FieldTotalHours] = roomBooking.TotalHours
	fields[model.FieldTotalAmount] = roomBooking.TotalAmount

	if err = s.roomRepo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.RoomTableName)); err != nil {
		log.Error().Err(err).Msg("failed to override room booking status")

		return res, fmt.Errorf("failed to override room booking status: %w", err)
	}

	s.logOverride(actor, roomBooking.Core, previous)
	s.afterWrite(ctx, model.KindRoom, roomBooking.Core, previous, now)

	res.FromRoomModel(roomBooking)

	return res, nil
}

func (s *serviceImpl) logOverride(actor string, core model.Core, previous model.Status) {
	log.Warn().
		Str("admin", actor).
		Str("reference", core.ReferenceNumber).
		Str("previousStatus", previous.String()).
		Bool("reopened", previous.IsTerminal() && !core.Status.IsTerminal()).
		Str("status", core.Status.String()).
		Msg("booking status overridden")
}

func (s *serviceImpl) afterWrite(ctx context.Context, kind model.Kind, core model.Core, previous model.Status, now time.Time) {
	e := event.New(event.TypeStatusOverridden, kind, core, now)
	e.PreviousStatus = previous

	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.CachePrefix)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.events.Publish(c, e); err != nil {
			log.Error().Err(err).Str("reference", e.Reference).Msg("failed to publish booking event")
		}
	}()
}

// Stats counts bookings of both kinds per status. Every status is present even when zero.
func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	serviceCounts, err := s.serviceRepo.CountBy(ctx, model.FieldStatus, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count service bookings by status")

		return res, fmt.Errorf("failed to count service bookings by status: %w", err)
	}

	roomCounts, err := s.roomRepo.CountBy(ctx, model.FieldStatus, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count room bookings by status")

		return res, fmt.Errorf("failed to count room bookings by status: %w", err)
	}

	res.Add(serviceCounts)
	res.Add(roomCounts)

	return res, nil
}
