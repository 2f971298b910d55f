package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Codes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code int
		typ  ErrorType
	}{
		{"validation", NewValidationError("bad"), http.StatusBadRequest, ErrorTypeValidation},
		{"bad request", NewBadRequestError("bad"), http.StatusBadRequest, ErrorTypeBadRequest},
		{"not found", NewNotFoundError("missing"), http.StatusNotFound, ErrorTypeNotFound},
		{"conflict", NewConflictError("dup"), http.StatusConflict, ErrorTypeConflict},
		{"unauthorized", NewUnauthorizedError("nope"), http.StatusUnauthorized, ErrorTypeUnauthorized},
		{"rate limited", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, ErrorTypeTooManyRequests},
		{"internal", NewInternalError("boom"), http.StatusInternalServerError, ErrorTypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.typ, tt.err.Type)
		})
	}
}

func TestAppError_ErrorString(t *testing.T) {
	assert.Equal(t, "not_found: user not found", NewNotFoundError("user not found").Error())
	assert.Equal(t, "conflict: email taken (a@x.com)", NewConflictError("email taken", "a@x.com").Error())
}

func TestGetAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("stop session: %w", NewConflictError("connection already stopped"))

	assert.True(t, IsAppError(wrapped))
	assert.True(t, IsConflictError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))
	assert.Nil(t, GetAppError(stderrors.New("plain")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(stderrors.New("UNIQUE constraint failed: users.email")))
	assert.True(t, IsDuplicateError(stderrors.New("Error 1062: Duplicate entry 'a@x.com' for key 'email'")))
	assert.True(t, IsDuplicateError(stderrors.New("pq: duplicate key value violates unique constraint")))
	assert.False(t, IsDuplicateError(stderrors.New("database is locked")))
	assert.False(t, IsDuplicateError(nil))
}
