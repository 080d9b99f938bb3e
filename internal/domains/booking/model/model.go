package model

import (
	"petcare/shared/model"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	ServiceTableName  = "bookings"
	ServiceEntityName = "service_booking"
	RoomTableName     = "room_bookings"
	RoomEntityName    = "room_booking"

	FieldID              = "id"
	FieldReferenceNumber = "reference_number"
	FieldStatus          = "status"
	FieldCreatedAt       = "created_at"
	FieldTotalNights     = "total_nights"
	FieldTotalHours      = "total_hours"
	FieldTotalAmount     = "total_amount"
)

const (
	PrefixService = "BK"
	PrefixRoom    = "RB"
)

// Kind tells the two booking shapes apart wherever they travel together.
type Kind string

const (
	KindService Kind = "service"
	KindRoom    Kind = "room"
)

// KindFromReference resolves the table a reference number lives in from its prefix.
func KindFromReference(reference string) (Kind, bool) {
	switch {
	case strings.HasPrefix(reference, PrefixRoom):
		return KindRoom, true
	case strings.HasPrefix(reference, PrefixService):
		return KindService, true
	default:
		return "", false
	}
}

type PetType string

const (
	PetTypeDog   PetType = "dog"
	PetTypeCat   PetType = "cat"
	PetTypeOther PetType = "other"
)

type BookingType string

const (
	BookingTypeNightly BookingType = "nightly"
	BookingTypeHourly  BookingType = "hourly"
)

type PriceUnit string

const (
	PriceUnitNight PriceUnit = "night"
	PriceUnitHour  PriceUnit = "hour"
)

// PriceUnit is the only unit label a booking type may be priced in.
func (b BookingType) PriceUnit() PriceUnit {
	switch b {
	case BookingTypeNightly:
		return PriceUnitNight
	case BookingTypeHourly:
		return PriceUnitHour
	default:
		return ""
	}
}

// Core is the part every booking shares: identity, lifecycle and audit columns.
type Core struct {
	ID              string `db:"id"`
	ReferenceNumber string `db:"reference_number"`
	Status          Status `db:"status"`
	model.Metadata
}

// Transition moves the booking along the state machine.
func (c *Core) Transition(to Status) error {
	if !c.Status.CanTransitionTo(to) {
		return &TransitionError{From: c.Status, To: to}
	}

	c.Status = to

	return nil
}

// Confirm is the self-serve step: only a pending booking can be confirmed.
func (c *Core) Confirm() error {
	return c.Transition(StatusConfirmed)
}

// Override writes any valid status without consulting the state machine and returns the one it
// replaced. It exists for administrators correcting records by hand.
func (c *Core) Override(to Status) Status {
	previous := c.Status
	c.Status = to

	return previous
}

// ServiceBooking is a grooming appointment.
type ServiceBooking struct {
	Core
	PetName     string  `db:"pet_name"`
	PetType     PetType `db:"pet_type"`
	OwnerName   string  `db:"owner_name"`
	Email       string  `db:"email"`
	Phone       string  `db:"phone"`
	ServiceID   string  `db:"service_id"`
	ServiceName string  `db:"service_name"`
	Date        string  `db:"date"`
	Time        string  `db:"time"`
	Notes       string  `db:"notes"`
}

// RoomBooking is a pet hotel stay billed per night or per hour.
type RoomBooking struct {
	Core
	PetName         string          `db:"pet_name"`
	PetType         PetType         `db:"pet_type"`
	StartDate       time.Time       `db:"start_date"`
	EndDate         time.Time       `db:"end_date"`
	SpecialRequests string          `db:"special_requests"`
	BookingType     BookingType     `db:"booking_type"`
	RoomID          int             `db:"room_id"`
	RoomName        string          `db:"room_name"`
	Price           decimal.Decimal `db:"price"`
	PriceUnit       PriceUnit       `db:"price_unit"`
	OwnerName       string          `db:"owner_name"`
	Email           string          `db:"email"`
	Phone           string          `db:"phone"`
	TotalNights     int             `db:"total_nights"`
	TotalHours      int             `db:"total_hours"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
}

const (
	// CachePrefix scopes every cached booking read so a write can drop them together.
	CachePrefix = "booking:"

	MessageNotFound = "Booking not found"
)

// StatusUpdate is the column set a status change writes.
type StatusUpdate struct {
	Status Status `db:"status"`
}
