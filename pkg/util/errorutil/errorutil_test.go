package errorutil

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestToDomainError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"Validation", NewValidationError("bad input", nil), "VALIDATION_FAILED", http.StatusBadRequest},
		{"NotFound", NewNotFound("playlist", nil), "NOT_FOUND", http.StatusNotFound},
		{"Unauthorized", NewUnauthorized("invalid credentials"), "UNAUTHORIZED", http.StatusUnauthorized},
		{"Forbidden", NewForbidden("no token provided"), "FORBIDDEN", http.StatusForbidden},
		{"Conflict", NewConflict("email already registered", nil), "CONFLICT", http.StatusConflict},
		{"Upstream", NewUpstreamError("spotify search failed", errors.New("boom")), "UPSTREAM_ERROR", http.StatusInternalServerError},
		{"Internal", NewInternalError(errors.New("boom")), "INTERNAL_ERROR", http.StatusInternalServerError},
		{"NoRows", sql.ErrNoRows, "NOT_FOUND", http.StatusNotFound},
		{"Generic", errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			domainErr := ToDomainError(tc.err)
			if domainErr.Code != tc.wantCode {
				t.Errorf("expected code %s, got %s", tc.wantCode, domainErr.Code)
			}
			if domainErr.HTTPStatus != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, domainErr.HTTPStatus)
			}
		})
	}

	t.Run("Nil", func(t *testing.T) {
		if ToDomainError(nil) != nil {
			t.Error("expected nil for nil error")
		}
	})

	t.Run("Wrapped DomainError Preserved", func(t *testing.T) {
		inner := NewNotFound("playlist", nil)
		wrapped := fmt.Errorf("while updating: %w", inner)
		if ToDomainError(wrapped).Code != "NOT_FOUND" {
			t.Error("expected wrapped domain error to be unwrapped")
		}
	})
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewUpstreamError("upstream failed", cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the wrapped cause")
	}
}
