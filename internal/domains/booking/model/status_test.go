package model_test

import (
	"errors"
	"petcare/internal/domains/booking/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from model.Status
		to   model.Status
		want bool
	}{
		{model.StatusPending, model.StatusConfirmed, true},
		{model.StatusPending, model.StatusCompleted, false},
		{model.StatusPending, model.StatusCancelled, false},
		{model.StatusConfirmed, model.StatusCompleted, true},
		{model.StatusConfirmed, model.StatusCancelled, true},
		{model.StatusConfirmed, model.StatusPending, false},
		{model.StatusCompleted, model.StatusCancelled, false},
		{model.StatusCancelled, model.StatusConfirmed, false},
		{model.Status("archived"), model.StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, model.StatusPending.IsTerminal())
	assert.False(t, model.StatusConfirmed.IsTerminal())
	assert.True(t, model.StatusCompleted.IsTerminal())
	assert.True(t, model.StatusCancelled.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	for _, s := range model.Statuses() {
		got, err := model.ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := model.ParseStatus("archived")
	assert.Error(t, err)

	_, err = model.ParseStatus("")
	assert.Error(t, err)
}

func TestCore_Confirm(t *testing.T) {
	core := model.Core{Status: model.StatusPending}

	require.NoError(t, core.Confirm())
	assert.Equal(t, model.StatusConfirmed, core.Status)

	err := core.Confirm()
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidTransition))
	assert.Equal(t, "Booking cannot be confirmed. Current status: confirmed", err.Error())
	assert.Equal(t, model.StatusConfirmed, core.Status)
}

func TestCore_ConfirmTerminal(t *testing.T) {
	core := model.Core{Status: model.StatusCancelled}

	err := core.Confirm()

	assert.ErrorIs(t, err, model.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "cancelled")
}

func TestCore_Override(t *testing.T) {
	core := model.Core{Status: model.StatusCancelled}

	previous := core.Override(model.StatusPending)

	assert.Equal(t, model.StatusCancelled, previous)
	assert.Equal(t, model.StatusPending, core.Status)
}

func TestKindFromReference(t *testing.T) {
	tests := []struct {
		reference string
		want      model.Kind
		ok        bool
	}{
		{"RB123456ABCD", model.KindRoom, true},
		{"BK082204M557", model.KindService, true},
		{"XX123456ABCD", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.reference, func(t *testing.T) {
			got, ok := model.KindFromReference(tt.reference)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBookingType_PriceUnit(t *testing.T) {
	assert.Equal(t, model.PriceUnitNight, model.BookingTypeNightly.PriceUnit())
	assert.Equal(t, model.PriceUnitHour, model.BookingTypeHourly.PriceUnit())
	assert.Equal(t, model.PriceUnit(""), model.BookingType("weekly").PriceUnit())
}
