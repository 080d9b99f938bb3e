package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"petcare/config"
	"petcare/infras/otel"
	"petcare/internal/domains/booking/event"
	"petcare/internal/domains/booking/model"
	"petcare/internal/domains/booking/model/dto"
	"petcare/internal/domains/booking/pricing"
	"petcare/internal/domains/booking/reference"
	"petcare/internal/domains/booking/repository"
	"petcare/shared"
	"petcare/shared/cache"
	"petcare/shared/constant"
	gDto "petcare/shared/dto"
	"petcare/shared/failure"
	gRepo "petcare/shared/repository"
	"petcare/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllServiceBookings = model.CachePrefix + "service:gets"
	cacheCountServiceBookings  = model.CachePrefix + "service:count"
	cacheGetAllRoomBookings    = model.CachePrefix + "room:gets"
	cacheCountRoomBookings     = model.CachePrefix + "room:count"
)

const (
	defaultReferenceMaxAttempts = 3
	messageReferenceUnavailable = "Could not allocate a booking reference, please try again"
)

const (
	fieldDate      = "date"
	fieldPetName   = "pet_name"
	fieldStartDate = "start_date"
	fieldEndDate   = "end_date"
)

var (
	serviceSortColumns = []string{model.FieldCreatedAt, model.FieldStatus, fieldDate, fieldPetName}
	roomSortColumns    = []string{model.FieldCreatedAt, model.FieldStatus, fieldStartDate, fieldEndDate, fieldPetName, model.FieldTotalAmount}
)

type Booking interface {
	CreateServiceBooking(ctx context.Context, req dto.CreateServiceBookingRequest) (dto.ServiceBookingResponse, error)
	CreateRoomBooking(ctx context.Context, req dto.CreateRoomBookingRequest) (dto.RoomBookingResponse, error)
	GetServiceBookings(ctx context.Context, params gDto.QueryParams) (dto.GetServiceBookingsResponse, error)
	GetRoomBookings(ctx context.Context, params gDto.QueryParams) (dto.GetRoomBookingsResponse, error)
	GetByReference(ctx context.Context, reference string) (dto.BookingEntry, error)
	Confirm(ctx context.Context, reference string) (dto.BookingEntry, error)
}

type serviceImpl struct {
	serviceRepo repository.ServiceBooking
	roomRepo    repository.RoomBooking
	references  reference.Generator
	events      event.Publisher
	clock       timezone.Clock
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	serviceRepo repository.ServiceBooking,
	roomRepo repository.RoomBooking,
	references reference.Generator,
	events event.Publisher,
	clock timezone.Clock,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		serviceRepo: serviceRepo,
		roomRepo:    roomRepo,
		references:  references,
		events:      events,
		clock:       clock,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func actorFrom(ctx context.Context) string {
	if subject, ok := ctx.Value(constant.ContextKeyAdminSubject).(string); ok && subject != "" {
		return subject
	}

	return constant.ContextAnonymous
}

func (s *serviceImpl) CreateServiceBooking(ctx context.Context, req dto.CreateServiceBookingRequest) (res dto.ServiceBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateServiceBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := s.clock()

	if err = req.Validate(now); err != nil {
		return res, err
	}

	booking := req.ToModel(uuid.NewString(), now, actorFrom(ctx))

	err = s.insertWithReference(ctx, model.PrefixService, &booking.Core, func(ctx context.Context) error {
		return s.serviceRepo.Insert(ctx, booking)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create service booking")

		return res, fmt.Errorf("failed to create service booking: %w", err)
	}

	s.afterWrite(ctx, event.New(event.TypeCreated, model.KindService, booking.Core, now))

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) CreateRoomBooking(ctx context.Context, req dto.CreateRoomBookingRequest) (res dto.RoomBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRoomBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := s.clock()

	if err = req.Validate(now); err != nil {
		return res, err
	}

	booking, err := req.ToModel(uuid.NewString(), now, actorFrom(ctx))
	if err != nil {
		log.Error().Err(err).Msg("failed to build room booking")

		return res, fmt.Errorf("failed to build room booking: %w", err)
	}

	if err = pricing.Apply(&booking); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	err = s.insertWithReference(ctx, model.PrefixRoom, &booking.Core, func(ctx context.Context) error {
		return s.roomRepo.Insert(ctx, booking)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create room booking")

		return res, fmt.Errorf("failed to create room booking: %w", err)
	}

	s.afterWrite(ctx, event.New(event.TypeCreated, model.KindRoom, booking.Core, now))

	res.FromModel(booking)

	return res, nil
}

// insertWithReference assigns a fresh reference and inserts, regenerating the reference when
// the unique index reports a collision.
func (s *serviceImpl) insertWithReference(ctx context.Context, prefix string, core *model.Core, insert func(ctx context.Context) error) error {
	attempts := s.cfg.Booking.ReferenceMaxAttempts
	if attempts <= 0 {
		attempts = defaultReferenceMaxAttempts
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		core.ReferenceNumber = s.references.Generate(prefix)

		err := insert(ctx)
		if err == nil {
			return nil
		}

		if !gRepo.IsUniqueViolation(err) {
			return err
		}

		log.Warn().Str("reference", core.ReferenceNumber).Int("attempt", attempt).Msg("booking reference collision")
	}

	return failure.Conflict(messageReferenceUnavailable) // nolint:wrapcheck
}

func (s *serviceImpl) GetServiceBookings(ctx context.Context, params gDto.QueryParams) (res dto.GetServiceBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetServiceBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.RestrictSort(serviceSortColumns...)

	filter := gDto.FilterGroup{}
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllServiceBookings, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for service bookings")

		return res, nil
	}

	total, err := s.countServiceBookings(ctx, params, filter)
	if err != nil {
		return res, err
	}

	models, err := s.serviceRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service bookings")

		return res, fmt.Errorf("failed to get service bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) countServiceBookings(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".countServiceBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountServiceBookings, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.serviceRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count service bookings")

		return res, fmt.Errorf("failed to count service bookings: %w", err)
	}

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetRoomBookings(ctx context.Context, params gDto.QueryParams) (res dto.GetRoomBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoomBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.RestrictSort(roomSortColumns...)

	filter := gDto.FilterGroup{}
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoomBookings, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room bookings")

		return res, nil
	}

	total, err := s.countRoomBookings(ctx, params, filter)
	if err != nil {
		return res, err
	}

	models, err := s.roomRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room bookings")

		return res, fmt.Errorf("failed to get room bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) countRoomBookings(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".countRoomBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoomBookings, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.roomRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room bookings")

		return res, fmt.Errorf("failed to count room bookings: %w", err)
	}

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

// GetByReference always reads the store. The checkout screen calls it right after a confirm,
// so a cached copy could show the old status.
func (s *serviceImpl) GetByReference(ctx context.Context, reference string) (res dto.BookingEntry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByReference")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	kind, ok := model.KindFromReference(reference)
	if !ok {
		return res, failure.NotFound(model.MessageNotFound) // nolint:wrapcheck
	}

	switch kind {
	case model.KindRoom:
		booking, err := s.findRoomBooking(ctx, reference)
		if err != nil {
			return res, err
		}

		res.FromRoomModel(booking)
	default:
		booking, err := s.findServiceBooking(ctx, reference)
		if err != nil {
			return res, err
		}

		res.FromServiceModel(booking)
	}

	return res, nil
}

// Confirm moves a pending booking to confirmed. The read and the write are separate
// statements, so an admin override landing in between is overwritten.
func (s *serviceImpl) Confirm(ctx context.Context, reference string) (res dto.BookingEntry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	kind, ok := model.KindFromReference(reference)
	if !ok {
		return res, failure.NotFound(model.MessageNotFound) // nolint:wrapcheck
	}

	now := s.clock()
	actor := actorFrom(ctx)

	var core model.Core

	switch kind {
	case model.KindRoom:
		booking, err := s.findRoomBooking(ctx, reference)
		if err != nil {
			return res, err
		}

		if err = s.confirmRoomBooking(ctx, &booking, actor, now); err != nil {
			return res, err
		}

		core = booking.Core
		res.FromRoomModel(booking)
	default:
		booking, err := s.findServiceBooking(ctx, reference)
		if err != nil {
			return res, err
		}

		if err = booking.Confirm(); err != nil {
			return res, transitionFailure(err)
		}

		fields := shared.TransformFields(model.StatusUpdate{Status: booking.Status}, actor, now)
		if err = s.serviceRepo.Update(ctx, fields, shared.FilterByID(booking.ID, model.FieldID, model.ServiceTableName)); err != nil {
			log.Error().Err(err).Msg("failed to confirm service booking")

			return res, fmt.Errorf("failed to confirm service booking: %w", err)
		}

		core = booking.Core
		res.FromServiceModel(booking)
	}

	s.afterWrite(ctx, event.New(event.TypeConfirmed, kind, core, now))

	return res, nil
}

// confirmRoomBooking confirms and recomputes the totals, which are rewritten with the status.
func (s *serviceImpl) confirmRoomBooking(ctx context.Context, booking *model.RoomBooking, actor string, now time.Time) error {
	if err := booking.Confirm(); err != nil {
		return transitionFailure(err)
	}

	if err := pricing.Apply(booking); err != nil {
		log.Error().Err(err).Str("reference", booking.ReferenceNumber).Msg("failed to price room booking")

		return fmt.Errorf("failed to price room booking: %w", err)
	}

	fields := shared.TransformFields(model.StatusUpdate{Status: booking.Status}, actor, now)
	fields[model.FieldTotalNights] = booking.TotalNights
	fields[model.FieldTotalHours] = booking.TotalHours
	fields[model.FieldTotalAmount] = booking.TotalAmount

	if err := s.roomRepo.Update(ctx, fields, shared.FilterByID(booking.ID, model.FieldID, model.RoomTableName)); err != nil {
		log.Error().Err(err).Msg("failed to confirm room booking")

		return fmt.Errorf("failed to confirm room booking: %w", err)
	}

	return nil
}

func transitionFailure(err error) error {
	var transitionErr *model.TransitionError
	if errors.As(err, &transitionErr) {
		return failure.BadRequestFromString(transitionErr.Error()) // nolint:wrapcheck
	}

	return err
}

func (s *serviceImpl) findServiceBooking(ctx context.Context, reference string) (model.ServiceBooking, error) {
	booking, err := s.serviceRepo.Get(ctx, shared.FilterByID(reference, model.FieldReferenceNumber, model.ServiceTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service booking")

		return booking, fmt.Errorf("failed to get service booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(model.MessageNotFound) // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) findRoomBooking(ctx context.Context, reference string) (model.RoomBooking, error) {
	booking, err := s.roomRepo.Get(ctx, shared.FilterByID(reference, model.FieldReferenceNumber, model.RoomTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room booking")

		return booking, fmt.Errorf("failed to get room booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(model.MessageNotFound) // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save bookings to cache")
		}
	}()
}

// afterWrite runs once the store has accepted a write. Cached listings are dropped before the
// caller returns; only the event is published in the background.
func (s *serviceImpl) afterWrite(ctx context.Context, e event.Event) {
	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.CachePrefix)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.events.Publish(c, e); err != nil {
			log.Error().Err(err).Str("reference", e.Reference).Msg("failed to publish booking event")
		}
	}()
}
