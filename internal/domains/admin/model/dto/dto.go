package dto

import (
	"petcare/infras/jwt"
	"petcare/internal/domains/booking/model"
	bookingDto "petcare/internal/domains/booking/model/dto"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	ExpiresIn int64  `json:"expiresIn"`
}

func (l *LoginResponse) FromToken(token *jwt.Token) {
	l.Token = token.AccessToken
	l.TokenType = token.TokenType
	l.ExpiresIn = token.ExpiresIn
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

// BookingEntry is a booking of either kind as the admin panel sees it, with the internal id the
// status override needs.
type BookingEntry struct {
	ID string `json:"id"`
	bookingDto.BookingEntry
}

func (e *BookingEntry) FromServiceModel(m model.ServiceBooking) {
	e.ID = m.ID
	e.BookingEntry.FromServiceModel(m)
}

func (e *BookingEntry) FromRoomModel(m model.RoomBooking) {
	e.ID = m.ID
	e.BookingEntry.FromRoomModel(m)
}

type StatsResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// Add folds per-status counts into the totals. Statuses outside the lifecycle only count
// towards Total.
func (s *StatsResponse) Add(counts map[string]int) {
	for status, count := range counts {
		s.Total += count

		switch model.Status(status) {
		case model.StatusPending:
			s.Pending += count
		case model.StatusConfirmed:
			s.Confirmed += count
		case model.StatusCompleted:
			s.Completed += count
		case model.StatusCancelled:
			s.Cancelled += count
		}
	}
}
