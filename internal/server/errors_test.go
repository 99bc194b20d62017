package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/tailoring"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "email already exists",
			err:  &ErrEmailAlreadyExists{Email: "a@b.com"},
			want: http.StatusConflict,
		},
		{
			name: "invalid credentials",
			err:  &ErrInvalidCredentials{},
			want: http.StatusUnauthorized,
		},
		{
			name: "password mismatch",
			err:  &ErrPasswordMismatch{},
			want: http.StatusUnauthorized,
		},
		{
			name: "user not found",
			err:  &ErrUserNotFound{UserID: uuid.New()},
			want: http.StatusNotFound,
		},
		{
			name: "validation error",
			err:  &ErrValidation{Field: "email", Message: "required"},
			want: http.StatusBadRequest,
		},
		{
			name: "generation service unavailable",
			err:  &llm.ServiceUnavailableError{Model: "gemini-2.5-pro", Cause: errors.New("503")},
			want: http.StatusBadGateway,
		},
		{
			name: "empty generation response",
			err:  &llm.EmptyResponseError{Model: "gemini-2.5-pro", Reason: "no candidates"},
			want: http.StatusBadGateway,
		},
		{
			name: "generation exhausted",
			err:  &tailoring.GenerationExhaustedError{Attempts: 2, LastErr: errors.New("bad json")},
			want: http.StatusBadGateway,
		},
		{
			name: "wrapped generation exhausted",
			err:  fmt.Errorf("tailoring failed: %w", &tailoring.GenerationExhaustedError{Attempts: 2}),
			want: http.StatusBadGateway,
		},
		{
			name: "validation failed",
			err:  &tailoring.ValidationFailedError{Cause: errors.New("missing email")},
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "unknown error",
			err:  errors.New("something broke"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
