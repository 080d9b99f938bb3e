// Package pricing computes room booking totals. A started unit is billed as a whole unit and
// every stay is billed for at least one unit.
package pricing

import (
	"errors"
	"petcare/internal/domains/booking/model"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrReversedRange      = errors.New("end date is before start date")
	ErrUnknownBookingType = errors.New("unknown booking type")
	ErrNegativePrice      = errors.New("price must not be negative")
)

const (
	night = 24 * time.Hour
	hour  = time.Hour
)

type Quote struct {
	Units  int
	Amount decimal.Decimal
}

// UnitLength is the span one billable unit covers for the booking type.
func UnitLength(bookingType model.BookingType) (time.Duration, error) {
	switch bookingType {
	case model.BookingTypeNightly:
		return night, nil
	case model.BookingTypeHourly:
		return hour, nil
	default:
		return 0, ErrUnknownBookingType
	}
}

func Calculate(start, end time.Time, bookingType model.BookingType, price decimal.Decimal) (Quote, error) {
	unit, err := UnitLength(bookingType)
	if err != nil {
		return Quote{}, err
	}

	if price.IsNegative() {
		return Quote{}, ErrNegativePrice
	}

	elapsed := end.Sub(start)
	if elapsed < 0 {
		return Quote{}, ErrReversedRange
	}

	units := int((elapsed + unit - 1) / unit)
	units = max(units, 1)

	return Quote{
		Units:  units,
		Amount: price.Mul(decimal.NewFromInt(int64(units))),
	}, nil
}

// Apply recomputes the totals of a room booking from its own dates, type and price.
func Apply(booking *model.RoomBooking) error {
	quote, err := Calculate(booking.StartDate, booking.EndDate, booking.BookingType, booking.Price)
	if err != nil {
		return err
	}

	booking.TotalNights = 0
	booking.TotalHours = 0

	if booking.BookingType == model.BookingTypeNightly {
		booking.TotalNights = quote.Units
	} else {
		booking.TotalHours = quote.Units
	}

	booking.TotalAmount = quote.Amount

	return nil
}
