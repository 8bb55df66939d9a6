package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/backend-server/accounts-api/internal/core/domain"
)

func TestHTTPErrorHandler_ContractMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"registration validation", domain.ErrRegistrationFieldsMissing, http.StatusBadRequest, "Username, email and password are required"},
		{"login validation", domain.ErrLoginFieldsMissing, http.StatusBadRequest, "Email and password are required"},
		{"duplicate email", domain.ErrEmailTaken, http.StatusConflict, "User with this email already exists"},
		{"unknown email", domain.ErrUserNotFound, http.StatusUnauthorized, "Invalid email or password"},
		{"wrong password", domain.ErrPasswordMismatch, http.StatusUnauthorized, "Email or password is incorrect"},
		{"bad token", domain.ErrInvalidToken, http.StatusUnauthorized, "Invalid or expired token"},
		{"wrapped store failure", errors.New("mongo: socket closed"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			handle := NewHTTPErrorHandler(zerolog.Nop())

			req := httptest.NewRequest(http.MethodPost, "/auth/register", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handle(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["message"] != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, resp["message"])
			}
		})
	}
}

func TestHTTPErrorHandler_EchoErrors(t *testing.T) {
	e := echo.New()
	handle := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/auth/register", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handle(echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "invalid payload" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	handle := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = c.NoContent(http.StatusOK)

	// Must not write a second response once one is committed.
	handle(errors.New("late failure"), c)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected committed 200 to stand, got %d", rec.Code)
	}
}
