package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/backend-server/accounts-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their contract statuses and messages.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors. The two 401 messages are deliberately
	// distinct; that asymmetry is part of the contract.
	switch {
	case errors.Is(err, domain.ErrRegistrationFieldsMissing):
		return http.StatusBadRequest, "Username, email and password are required"
	case errors.Is(err, domain.ErrLoginFieldsMissing):
		return http.StatusBadRequest, "Email and password are required"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "User with this email already exists"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, domain.ErrPasswordMismatch):
		return http.StatusUnauthorized, "Email or password is incorrect"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid or expired token"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error"
}
