package dto

import (
	"petcare/internal/domains/booking/model"
	"petcare/shared"
	"petcare/shared/constant"
	gDto "petcare/shared/dto"
	"petcare/shared/timezone"

	"github.com/shopspring/decimal"
)

type ServiceBookingResponse struct {
	ReferenceNumber string `json:"referenceNumber"`
	PetName         string `json:"petName"`
	PetType         string `json:"petType"`
	OwnerName       string `json:"ownerName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	ServiceID       string `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Notes           string `json:"notes"`
	Status          string `json:"status"`
	gDto.Metadata
}

func (r *ServiceBookingResponse) FromModel(m model.ServiceBooking) {
	r.ReferenceNumber = m.ReferenceNumber
	r.PetName = m.PetName
	r.PetType = string(m.PetType)
	r.OwnerName = m.OwnerName
	r.Email = m.Email
	r.Phone = m.Phone
	r.ServiceID = m.ServiceID
	r.ServiceName = m.ServiceName
	r.Date = m.Date
	r.Time = m.Time
	r.Notes = m.Notes
	r.Status = m.Status.String()
	r.Metadata.FromModel(m.Metadata)
}

type GetServiceBookingsResponse struct {
	Bookings  []ServiceBookingResponse `json:"bookings"`
	TotalPage int                      `json:"totalPage"`
	TotalData int                      `json:"totalData"`
}

func (r *GetServiceBookingsResponse) FromModels(models []model.ServiceBooking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]ServiceBookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type RoomBookingResponse struct {
	ReferenceNumber string          `json:"referenceNumber"`
	PetName         string          `json:"petName"`
	PetType         string          `json:"petType"`
	StartDate       string          `json:"startDate"`
	EndDate         string          `json:"endDate"`
	SpecialRequests string          `json:"specialRequests"`
	BookingType     string          `json:"bookingType"`
	RoomID          int             `json:"roomId"`
	RoomName        string          `json:"roomName"`
	Price           decimal.Decimal `json:"price"`
	PriceUnit       string          `json:"priceUnit"`
	OwnerName       string          `json:"ownerName"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Status          string          `json:"status"`
	TotalNights     int             `json:"totalNights"`
	TotalHours      int             `json:"totalHours"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	gDto.Metadata
}

func (r *RoomBookingResponse) FromModel(m model.RoomBooking) {
	r.ReferenceNumber = m.ReferenceNumber
	r.PetName = m.PetName
	r.PetType = string(m.PetType)
	r.StartDate = timezone.Format(m.StartDate, constant.DateFormat)
	r.EndDate = timezone.Format(m.EndDate, constant.DateFormat)
	r.SpecialRequests = m.SpecialRequests
	r.BookingType = string(m.BookingType)
	r.RoomID = m.RoomID
	r.RoomName = m.RoomName
	r.Price = m.Price
	r.PriceUnit = string(m.PriceUnit)
	r.OwnerName = m.OwnerName
	r.Email = m.Email
	r.Phone = m.Phone
	r.Status = m.Status.String()
	r.TotalNights = m.TotalNights
	r.TotalHours = m.TotalHours
	r.TotalAmount = m.TotalAmount
	r.Metadata.FromModel(m.Metadata)
}

type GetRoomBookingsResponse struct {
	Bookings  []RoomBookingResponse `json:"bookings"`
	TotalPage int                   `json:"totalPage"`
	TotalData int                   `json:"totalData"`
}

func (r *GetRoomBookingsResponse) FromModels(models []model.RoomBooking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]RoomBookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEntry is either kind of booking in one flat shape, tagged with its kind. Fields that
// belong to the other kind are omitted.
type BookingEntry struct {
	Kind            model.Kind       `json:"kind"`
	ReferenceNumber string           `json:"referenceNumber"`
	Status          string           `json:"status"`
	PetName         string           `json:"petName"`
	PetType         string           `json:"petType"`
	OwnerName       string           `json:"ownerName,omitempty"`
	Email           string           `json:"email,omitempty"`
	Phone           string           `json:"phone,omitempty"`
	ServiceID       string           `json:"serviceId,omitempty"`
	ServiceName     string           `json:"serviceName,omitempty"`
	Date            string           `json:"date,omitempty"`
	Time            string           `json:"time,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	RoomID          int              `json:"roomId,omitempty"`
	RoomName        string           `json:"roomName,omitempty"`
	StartDate       string           `json:"startDate,omitempty"`
	EndDate         string           `json:"endDate,omitempty"`
	SpecialRequests string           `json:"specialRequests,omitempty"`
	BookingType     string           `json:"bookingType,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	PriceUnit       string           `json:"priceUnit,omitempty"`
	TotalNights     *int             `json:"totalNights,omitempty"`
	TotalHours      *int             `json:"totalHours,omitempty"`
	TotalAmount     *decimal.Decimal `json:"totalAmount,omitempty"`
	gDto.Metadata
}

func (e *BookingEntry) FromServiceModel(m model.ServiceBooking) {
	e.Kind = model.KindService
	e.ReferenceNumber = m.ReferenceNumber
	e.Status = m.Status.String()
	e.PetName = m.PetName
	e.PetType = string(m.PetType)
	e.OwnerName = m.OwnerName
	e.Email = m.Email
	e.Phone = m.Phone
	e.ServiceID = m.ServiceID
	e.ServiceName = m.ServiceName
	e.Date = m.Date
	e.Time = m.Time
	e.Notes = m.Notes
	e.Metadata.FromModel(m.Metadata)
}

func (e *BookingEntry) FromRoomModel(m model.RoomBooking) {
	e.Kind = model.KindRoom
	e.ReferenceNumber = m.ReferenceNumber
	e.Status = m.Status.String()
	e.PetName = m.PetName
	e.PetType = string(m.PetType)
	e.OwnerName = m.OwnerName
	e.Email = m.Email
	e.Phone = m.Phone
	e.RoomID = m.RoomID
	e.RoomName = m.RoomName
	e.StartDate = timezone.Format(m.StartDate, constant.DateFormat)
	e.EndDate = timezone.Format(m.EndDate, constant.DateFormat)
	e.SpecialRequests = m.SpecialRequests
	e.BookingType = string(m.BookingType)
	e.PriceUnit = string(m.PriceUnit)

	price, amount := m.Price, m.TotalAmount
	nights, hours := m.TotalNights, m.TotalHours

	e.Price = &price
	e.TotalAmount = &amount
	e.TotalNights = &nights
	e.TotalHours = &hours
	e.Metadata.FromModel(m.Metadata)
}
