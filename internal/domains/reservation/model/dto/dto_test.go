package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tandoor/internal/domains/reservation/model"
	"tandoor/internal/domains/reservation/model/dto"
)

func TestCreateReservationRequest_ToModel(t *testing.T) {
	req := dto.CreateReservationRequest{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Phone:   "+911234567890",
		Date:    "2026-09-15",
		Time:    "19:30",
		Guests:  4,
		Message: "window table please",
	}

	reservation, err := req.ToModel()

	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, reservation.Status)
	assert.Equal(t, "19:30", reservation.Time)
	assert.Equal(t, 2026, reservation.Date.Year())
	assert.Equal(t, time.September, reservation.Date.Month())
	assert.Equal(t, 15, reservation.Date.Day())
	assert.False(t, reservation.CreatedAt.IsZero())
}

func TestCreateReservationRequest_ToModel_InvalidInputs(t *testing.T) {
	tests := []struct {
		name string
		date string
		time string
	}{
		{name: "wrong date layout", date: "15-09-2026", time: "19:30"},
		{name: "wrong time layout", date: "2026-09-15", time: "7:30 PM"},
		{name: "empty date", date: "", time: "19:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateReservationRequest{
				Name:   "Asha Rao",
				Email:  "asha@example.com",
				Phone:  "+911234567890",
				Date:   tt.date,
				Time:   tt.time,
				Guests: 4,
			}

			_, err := req.ToModel()

			assert.Error(t, err)
		})
	}
}

func TestReservationResponse_FromModel(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		wantTime string
	}{
		{name: "time with seconds gets trimmed", stored: "19:30:00", wantTime: "19:30"},
		{name: "time without seconds passes through", stored: "19:30", wantTime: "19:30"},
		{name: "unparseable time is left alone", stored: "late evening", wantTime: "late evening"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservation := model.Reservation{
				ID:        42,
				Name:      "Asha Rao",
				Email:     "asha@example.com",
				Phone:     "+911234567890",
				Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
				Time:      tt.stored,
				Guests:    4,
				Status:    model.StatusConfirmed,
				CreatedAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
			}

			res := dto.ReservationResponse{}
			res.FromModel(reservation)

			assert.Equal(t, int64(42), res.ID)
			assert.Equal(t, "2026-09-15", res.Date)
			assert.Equal(t, tt.wantTime, res.Time)
			assert.Equal(t, "confirmed", res.Status)
		})
	}
}

func TestParseStatus(t *testing.T) {
	status, ok := model.ParseStatus("pending")
	assert.True(t, ok)
	assert.Equal(t, model.StatusPending, status)

	status, ok = model.ParseStatus("confirmed")
	assert.True(t, ok)
	assert.Equal(t, model.StatusConfirmed, status)

	_, ok = model.ParseStatus("cancelled")
	assert.False(t, ok)
}
