package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"tandoor/shared/failure"
)

func TestFailureConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "bad request from error", err: failure.BadRequest(errors.New("broken payload")), wantCode: http.StatusBadRequest, wantMsg: "broken payload"},
		{name: "bad request from string", err: failure.BadRequestFromString("invalid date"), wantCode: http.StatusBadRequest, wantMsg: "invalid date"},
		{name: "unauthorized", err: failure.Unauthorized("missing api key"), wantCode: http.StatusUnauthorized, wantMsg: "missing api key"},
		{name: "not found", err: failure.NotFound("reservation not found"), wantCode: http.StatusNotFound, wantMsg: "reservation not found"},
		{name: "conflict", err: failure.Conflict("duplicate entry"), wantCode: http.StatusConflict, wantMsg: "duplicate entry"},
		{name: "forbidden", err: failure.Forbidden("not allowed"), wantCode: http.StatusForbidden, wantMsg: "not allowed"},
		{name: "internal", err: failure.InternalError(errors.New("boom")), wantCode: http.StatusInternalServerError, wantMsg: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestFailureNilErrors(t *testing.T) {
	assert.Nil(t, failure.BadRequest(nil))
	assert.Nil(t, failure.InternalError(nil))
}

func TestGetCode_PlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("anything")))
}

func TestGetCode_WrappedFailure(t *testing.T) {
	wrapped := fmt.Errorf("confirm failed: %w", failure.NotFound("reservation not found"))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(wrapped))
	assert.True(t, failure.IsNotFound(wrapped))
	assert.False(t, failure.IsNotFound(errors.New("anything")))
}
