package service_test

import (
	"context"
	"fmt"
	"petcare/config"
	"petcare/infras/otel/mocks"
	"petcare/internal/domains/booking/event"
	"petcare/internal/domains/booking/model"
	"petcare/internal/domains/booking/reference"
	"petcare/internal/domains/booking/service"
	"petcare/shared/cache"
	"petcare/shared/constant"
	gDto "petcare/shared/dto"
	"petcare/shared/timezone"
	"sync"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRoomBookings enforces the reference_number unique index the way Postgres does.
type memoryRoomBookings struct {
	mu         sync.Mutex
	references map[string]struct{}
}

func (m *memoryRoomBookings) Insert(_ context.Context, booking model.RoomBooking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.references[booking.ReferenceNumber]; exists {
		return fmt.Errorf("failed to insert data (room_booking): %w", &pq.Error{Code: constant.PqErrorCodeUniqueViolation})
	}

	m.references[booking.ReferenceNumber] = struct{}{}

	return nil
}

func (m *memoryRoomBookings) Get(context.Context, gDto.FilterGroup, ...string) (model.RoomBooking, error) {
	return model.RoomBooking{}, nil
}

func (m *memoryRoomBookings) GetAll(context.Context, gDto.QueryParams, gDto.FilterGroup, ...string) ([]model.RoomBooking, error) {
	return nil, nil
}

func (m *memoryRoomBookings) Count(context.Context, gDto.FilterGroup) (int, error) {
	return len(m.references), nil
}

func (m *memoryRoomBookings) CountBy(context.Context, string, gDto.FilterGroup) (map[string]int, error) {
	return map[string]int{}, nil
}

func (m *memoryRoomBookings) Update(context.Context, map[string]any, gDto.FilterGroup) error {
	return nil
}

type noCache struct{}

func (noCache) Save(context.Context, string, any, int) error     { return nil }
func (noCache) Get(context.Context, string, any) error           { return cache.Nil }
func (noCache) Clear(context.Context, string) error              { return nil }
func (noCache) Incr(context.Context, string, int) (int64, error) { return 1, nil }

func TestBookingService_ReferencesStayUniqueUnderLoad(t *testing.T) {
	if testing.Short() {
		t.Skip("creates 10,000 bookings")
	}

	const total = 10_000

	store := &memoryRoomBookings{references: make(map[string]struct{}, total)}
	otel := mocks.NewOtel()
	cfg := &config.Config{}
	cfg.Booking.ReferenceMaxAttempts = 3

	svc := service.New(
		nil,
		store,
		reference.New(timezone.Now),
		event.NewPublisher(nil, cfg, otel),
		timezone.Now,
		cfg,
		noCache{},
		otel,
	)

	start := timezone.Now().AddDate(0, 0, 2).Format(constant.DateOnlyFormat)
	end := timezone.Now().AddDate(0, 0, 4).Format(constant.DateOnlyFormat)

	seen := make(map[string]struct{}, total)

	for range total {
		res, err := svc.CreateRoomBooking(context.Background(), roomRequest("nightly", start, end, "49"))
		require.NoError(t, err)

		seen[res.ReferenceNumber] = struct{}{}
	}

	assert.Len(t, seen, total)
	assert.Len(t, store.references, total)
}
