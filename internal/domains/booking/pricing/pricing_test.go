package pricing_test

import (
	"petcare/internal/domains/booking/model"
	"petcare/internal/domains/booking/pricing"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}

	return t
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name        string
		start       string
		end         string
		bookingType model.BookingType
		price       string
		wantUnits   int
		wantAmount  string
		wantErr     error
	}{
		{
			name:        "two whole nights",
			start:       "2025-06-01T00:00:00Z",
			end:         "2025-06-03T00:00:00Z",
			bookingType: model.BookingTypeNightly,
			price:       "50",
			wantUnits:   2,
			wantAmount:  "100",
		},
		{
			name:        "partial night rounds up",
			start:       "2025-06-01T14:00:00Z",
			end:         "2025-06-03T10:00:00Z",
			bookingType: model.BookingTypeNightly,
			price:       "79",
			wantUnits:   2,
			wantAmount:  "158",
		},
		{
			name:        "partial hour rounds up",
			start:       "2025-06-01T10:00:00Z",
			end:         "2025-06-01T13:30:00Z",
			bookingType: model.BookingTypeHourly,
			price:       "10",
			wantUnits:   4,
			wantAmount:  "40",
		},
		{
			name:        "same instant bills one night",
			start:       "2025-06-01T00:00:00Z",
			end:         "2025-06-01T00:00:00Z",
			bookingType: model.BookingTypeNightly,
			price:       "49",
			wantUnits:   1,
			wantAmount:  "49",
		},
		{
			name:        "same instant bills one hour",
			start:       "2025-06-01T09:00:00Z",
			end:         "2025-06-01T09:00:00Z",
			bookingType: model.BookingTypeHourly,
			price:       "8",
			wantUnits:   1,
			wantAmount:  "8",
		},
		{
			name:        "one second over an hour",
			start:       "2025-06-01T09:00:00Z",
			end:         "2025-06-01T10:00:01Z",
			bookingType: model.BookingTypeHourly,
			price:       "12.50",
			wantUnits:   2,
			wantAmount:  "25",
		},
		{
			name:        "fractional price stays exact",
			start:       "2025-06-01T00:00:00Z",
			end:         "2025-06-04T00:00:00Z",
			bookingType: model.BookingTypeNightly,
			price:       "0.1",
			wantUnits:   3,
			wantAmount:  "0.3",
		},
		{
			name:        "reversed range",
			start:       "2025-06-03T00:00:00Z",
			end:         "2025-06-01T00:00:00Z",
			bookingType: model.BookingTypeNightly,
			price:       "50",
			wantErr:     pricing.ErrReversedRange,
		},
		{
			name:        "unknown type",
			start:       "2025-06-01T00:00:00Z",
			end:         "2025-06-02T00:00:00Z",
			bookingType: model.BookingType("weekly"),
			price:       "50",
			wantErr:     pricing.ErrUnknownBookingType,
		},
		{
			name:        "negative price",
			start:       "2025-06-01T00:00:00Z",
			end:         "2025-06-02T00:00:00Z",
			bookingType: model.BookingTypeNightly,
			price:       "-1",
			wantErr:     pricing.ErrNegativePrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := pricing.Calculate(at(tt.start), at(tt.end), tt.bookingType, decimal.RequireFromString(tt.price))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantUnits, quote.Units)
			assert.True(t, decimal.RequireFromString(tt.wantAmount).Equal(quote.Amount), "amount %s", quote.Amount)
		})
	}
}

func TestApply(t *testing.T) {
	booking := model.RoomBooking{
		StartDate:   at("2025-06-01T10:00:00Z"),
		EndDate:     at("2025-06-01T13:30:00Z"),
		BookingType: model.BookingTypeHourly,
		Price:       decimal.NewFromInt(10),
		TotalNights: 7,
	}

	require.NoError(t, pricing.Apply(&booking))

	assert.Equal(t, 4, booking.TotalHours)
	assert.Zero(t, booking.TotalNights)
	assert.True(t, decimal.NewFromInt(40).Equal(booking.TotalAmount))

	booking.BookingType = model.BookingTypeNightly
	booking.EndDate = at("2025-06-03T10:00:00Z")

	require.NoError(t, pricing.Apply(&booking))

	assert.Equal(t, 2, booking.TotalNights)
	assert.Zero(t, booking.TotalHours)
	assert.True(t, decimal.NewFromInt(20).Equal(booking.TotalAmount))
}

func TestApply_KeepsTotalsOnError(t *testing.T) {
	booking := model.RoomBooking{
		StartDate:   at("2025-06-03T00:00:00Z"),
		EndDate:     at("2025-06-01T00:00:00Z"),
		BookingType: model.BookingTypeNightly,
		Price:       decimal.NewFromInt(50),
		TotalNights: 2,
		TotalAmount: decimal.NewFromInt(100),
	}

	assert.ErrorIs(t, pricing.Apply(&booking), pricing.ErrReversedRange)
	assert.Equal(t, 2, booking.TotalNights)
}
