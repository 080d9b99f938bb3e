package dto_test

import (
	"encoding/json"
	"petcare/infras/jwt"
	"petcare/internal/domains/admin/model/dto"
	"petcare/internal/domains/booking/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsResponse_Add(t *testing.T) {
	var stats dto.StatsResponse

	stats.Add(map[string]int{"pending": 2, "confirmed": 1})
	stats.Add(map[string]int{"pending": 1, "cancelled": 4})

	assert.Equal(t, dto.StatsResponse{Total: 8, Pending: 3, Confirmed: 1, Cancelled: 4}, stats)
}

func TestStatsResponse_ZeroFilled(t *testing.T) {
	raw, err := json.Marshal(dto.StatsResponse{})
	require.NoError(t, err)

	assert.JSONEq(t, `{"total":0,"pending":0,"confirmed":0,"completed":0,"cancelled":0}`, string(raw))
}

func TestBookingEntry_CarriesID(t *testing.T) {
	var entry dto.BookingEntry
	entry.FromRoomModel(model.RoomBooking{Core: model.Core{ID: "abc", ReferenceNumber: "RB000001ABCD"}})

	raw, err := json.Marshal(entry)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.Equal(t, "abc", fields["id"])
	assert.Equal(t, "room", fields["kind"])
	assert.Equal(t, "RB000001ABCD", fields["referenceNumber"])
}

func TestLoginResponse_FromToken(t *testing.T) {
	var res dto.LoginResponse
	res.FromToken(&jwt.Token{AccessToken: "signed", TokenType: "Bearer", ExpiresIn: 3600})

	assert.Equal(t, dto.LoginResponse{Token: "signed", TokenType: "Bearer", ExpiresIn: 3600}, res)
}
