package dto

import (
	"fmt"
	"time"

	"tandoor/internal/domains/reservation/model"
	"tandoor/shared"
	"tandoor/shared/constant"
	"tandoor/shared/timezone"
)

type CreateReservationRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email,max=100"`
	Phone   string `json:"phone"   validate:"required,max=15"`
	Date    string `json:"date"    validate:"required,dateonly"`
	Time    string `json:"time"    validate:"required,clocktime"`
	Guests  int    `json:"guests"  validate:"required,gt=0"`
	Message string `json:"message" validate:"omitempty"`
}

// ToModel builds a pending reservation. Date and time formats are already
// guaranteed by the dateonly/clocktime validation tags.
func (c *CreateReservationRequest) ToModel() (model.Reservation, error) {
	date, err := timezone.Parse(constant.DateOnlyFormat, c.Date)
	if err != nil {
		return model.Reservation{}, fmt.Errorf("invalid date: %w", err)
	}

	clock, err := time.Parse(constant.ClockTimeFormat, c.Time)
	if err != nil {
		return model.Reservation{}, fmt.Errorf("invalid time: %w", err)
	}

	return model.Reservation{
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Date:      date,
		Time:      clock.Format(constant.ClockTimeFormat),
		Guests:    c.Guests,
		Message:   c.Message,
		Status:    model.StatusPending,
		CreatedAt: timezone.Now(),
	}, nil
}

type ReservationResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Guests    int    `json:"guests"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

func (r *ReservationResponse) FromModel(mod model.Reservation) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Email = mod.Email
	r.Phone = mod.Phone
	r.Date = mod.Date.Format(constant.DateOnlyFormat)
	r.Time = formatClock(mod.Time)
	r.Guests = mod.Guests
	r.Message = mod.Message
	r.Status = mod.Status.String()
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
}

// formatClock normalizes the stored time-of-day; postgres echoes TIME columns
// with seconds ("19:30:00") while the API contract is HH:MM.
func formatClock(value string) string {
	if clock, err := time.Parse("15:04:05", value); err == nil {
		return clock.Format(constant.ClockTimeFormat)
	}

	if clock, err := time.Parse(constant.ClockTimeFormat, value); err == nil {
		return clock.Format(constant.ClockTimeFormat)
	}

	return value
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// ConfirmReservationResponse mirrors the public confirm endpoint contract.
type ConfirmReservationResponse struct {
	Status      string              `json:"status"`
	Message     string              `json:"message"`
	Reservation ReservationResponse `json:"reservation"`
}
