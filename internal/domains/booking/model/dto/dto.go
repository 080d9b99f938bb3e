package dto

import (
	"errors"
	"petcare/internal/domains/booking/model"
	"petcare/shared/constant"
	"petcare/shared/failure"
	"petcare/shared/timezone"
	"petcare/shared/validator"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const msgInvalidPrice = "price must be a non-negative number"

// ErrNotValidated is returned when a request is converted before Validate accepted it.
var ErrNotValidated = errors.New("booking request has not been validated")

type CreateServiceBookingRequest struct {
	PetName     string `json:"petName"     validate:"required,min=2,max=50"`
	PetType     string `json:"petType"     validate:"required,oneof=dog cat other"`
	OwnerName   string `json:"ownerName"   validate:"required,max=100"`
	Email       string `json:"email"       validate:"required,email,max=100"`
	Phone       string `json:"phone"       validate:"required,phone"`
	ServiceID   string `json:"serviceId"   validate:"required"`
	ServiceName string `json:"serviceName" validate:"required,max=100"`
	Date        string `json:"date"        validate:"required"`
	Time        string `json:"time"        validate:"required"`
	Notes       string `json:"notes"       validate:"omitempty,max=500"`
}

func (r *CreateServiceBookingRequest) normalize() {
	r.PetName = strings.TrimSpace(r.PetName)
	r.OwnerName = strings.TrimSpace(r.OwnerName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.ServiceID = strings.TrimSpace(r.ServiceID)
	r.ServiceName = strings.TrimSpace(r.ServiceName)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.Notes = strings.TrimSpace(r.Notes)
}

// Validate checks every rule, including the ones struct tags cannot express, and reports all
// violations at once. now decides what counts as a past date.
func (r *CreateServiceBookingRequest) Validate(now time.Time) error {
	r.normalize()

	msgs := validator.Messages(r)

	if r.Date != "" {
		date, err := timezone.Parse(constant.DateOnlyFormat, r.Date)
		if err != nil {
			msgs = append(msgs, "date must be a valid date (YYYY-MM-DD)")
		} else if date.Before(timezone.StartOfDay(now)) {
			msgs = append(msgs, "date cannot be in the past")
		}
	}

	if r.Time != "" {
		if _, err := time.Parse(constant.TimeOnlyFormat, r.Time); err != nil {
			msgs = append(msgs, "time must be in HH:MM format")
		}
	}

	if len(msgs) > 0 {
		return failure.Validation(msgs) // nolint:wrapcheck
	}

	return nil
}

func (r *CreateServiceBookingRequest) ToModel(id string, now time.Time, actor string) model.ServiceBooking {
	booking := model.ServiceBooking{
		Core: model.Core{
			ID:     id,
			Status: model.StatusPending,
		},
		PetName:     r.PetName,
		PetType:     model.PetType(r.PetType),
		OwnerName:   r.OwnerName,
		Email:       strings.ToLower(r.Email),
		Phone:       r.Phone,
		ServiceID:   r.ServiceID,
		ServiceName: r.ServiceName,
		Date:        r.Date,
		Time:        r.Time,
		Notes:       r.Notes,
	}
	booking.Stamp(now, actor)

	return booking
}

type CreateRoomBookingRequest struct {
	PetName         string `json:"petName"         validate:"required,min=2,max=50"`
	PetType         string `json:"petType"         validate:"required,oneof=dog cat other"`
	StartDate       string `json:"startDate"       validate:"required"`
	EndDate         string `json:"endDate"         validate:"required"`
	SpecialRequests string `json:"specialRequests" validate:"omitempty,max=500"`
	BookingType     string `json:"bookingType"     validate:"required,oneof=nightly hourly"`
	RoomID          int    `json:"roomId"          validate:"required,gte=1"`
	RoomName        string `json:"roomName"        validate:"required,max=100"`
	Price           string `json:"price"           validate:"required,decimal"`
	PriceUnit       string `json:"priceUnit"       validate:"required,oneof=night hour"`
	OwnerName       string `json:"ownerName"       validate:"omitempty,max=100"`
	Email           string `json:"email"           validate:"omitempty,email,max=100"`
	Phone           string `json:"phone"           validate:"omitempty,phone"`

	start     time.Time
	end       time.Time
	price     decimal.Decimal
	validated bool
}

func (r *CreateRoomBookingRequest) normalize() {
	r.PetName = strings.TrimSpace(r.PetName)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
	r.SpecialRequests = strings.TrimSpace(r.SpecialRequests)
	r.RoomName = strings.TrimSpace(r.RoomName)
	r.Price = strings.TrimSpace(r.Price)
	r.OwnerName = strings.TrimSpace(r.OwnerName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
}

// Validate runs the struct rules plus the date and pricing cross-checks and reports every
// violation at once. The parsed dates and price are kept for ToModel.
func (r *CreateRoomBookingRequest) Validate(now time.Time) error {
	r.normalize()
	r.validated = false

	msgs := validator.Messages(r)

	if r.Price != "" {
		price, err := decimal.NewFromString(r.Price)
		switch {
		case err != nil && !slices.Contains(msgs, msgInvalidPrice):
			msgs = append(msgs, msgInvalidPrice)
		case err == nil:
			r.price = price
		}
	}

	var startErr, endErr error

	if r.StartDate != "" {
		r.start, startErr = timezone.ParseInput(r.StartDate)
		if startErr != nil {
			msgs = append(msgs, "startDate must be a valid date")
		} else if r.start.Before(timezone.StartOfDay(now)) {
			msgs = append(msgs, "startDate cannot be in the past")
		}
	}

	if r.EndDate != "" {
		r.end, endErr = timezone.ParseInput(r.EndDate)
		if endErr != nil {
			msgs = append(msgs, "endDate must be a valid date")
		}
	}

	if r.StartDate != "" && r.EndDate != "" && startErr == nil && endErr == nil && r.end.Before(r.start) {
		msgs = append(msgs, "endDate must be on or after startDate")
	}

	bookingType := model.BookingType(r.BookingType)
	if unit := bookingType.PriceUnit(); unit != "" && r.PriceUnit != "" && model.PriceUnit(r.PriceUnit) != unit {
		msgs = append(msgs, "priceUnit must be "+string(unit)+" for "+r.BookingType+" bookings")
	}

	if len(msgs) > 0 {
		return failure.Validation(msgs) // nolint:wrapcheck
	}

	r.validated = true

	return nil
}

// ToModel builds the record from a request that passed Validate. Totals are left to pricing.
func (r *CreateRoomBookingRequest) ToModel(id string, now time.Time, actor string) (model.RoomBooking, error) {
	if !r.validated {
		return model.RoomBooking{}, ErrNotValidated
	}

	booking := model.RoomBooking{
		Core: model.Core{
			ID:     id,
			Status: model.StatusPending,
		},
		PetName:         r.PetName,
		PetType:         model.PetType(r.PetType),
		StartDate:       r.start,
		EndDate:         r.end,
		SpecialRequests: r.SpecialRequests,
		BookingType:     model.BookingType(r.BookingType),
		RoomID:          r.RoomID,
		RoomName:        r.RoomName,
		Price:           r.price,
		PriceUnit:       model.PriceUnit(r.PriceUnit),
		OwnerName:       r.OwnerName,
		Email:           strings.ToLower(r.Email),
		Phone:           r.Phone,
	}
	booking.Stamp(now, actor)

	return booking, nil
}
