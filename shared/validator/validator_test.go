package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tandoor/shared/failure"
	"tandoor/shared/validator"
)

type reservationForm struct {
	Name   string `json:"name"   validate:"required,max=100"`
	Email  string `json:"email"  validate:"required,email"`
	Date   string `json:"date"   validate:"required,dateonly"`
	Time   string `json:"time"   validate:"required,clocktime"`
	Guests int    `json:"guests" validate:"required,gt=0"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid payload",
			body: `{"name":"Asha Rao","email":"asha@example.com","date":"2026-09-15","time":"19:30","guests":4}`,
		},
		{
			name:    "malformed json",
			body:    `{"name":`,
			wantErr: true,
		},
		{
			name:    "missing required field",
			body:    `{"email":"asha@example.com","date":"2026-09-15","time":"19:30","guests":4}`,
			wantErr: true,
		},
		{
			name:    "bad email",
			body:    `{"name":"Asha Rao","email":"not-an-email","date":"2026-09-15","time":"19:30","guests":4}`,
			wantErr: true,
		},
		{
			name:    "date in wrong layout",
			body:    `{"name":"Asha Rao","email":"asha@example.com","date":"15/09/2026","time":"19:30","guests":4}`,
			wantErr: true,
		},
		{
			name:    "time with seconds",
			body:    `{"name":"Asha Rao","email":"asha@example.com","date":"2026-09-15","time":"19:30:00","guests":4}`,
			wantErr: true,
		},
		{
			name:    "zero guests",
			body:    `{"name":"Asha Rao","email":"asha@example.com","date":"2026-09-15","time":"19:30","guests":0}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := reservationForm{}

			err := validator.Validate(strings.NewReader(tt.body), &form)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2026-09-15", "dateonly"))
	assert.Error(t, validator.ValidateVar("tomorrow", "dateonly"))

	assert.NoError(t, validator.ValidateVar("09:05", "clocktime"))
	assert.Error(t, validator.ValidateVar("25:00", "clocktime"))
}
