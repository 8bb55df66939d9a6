package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the user identity injected by the Auth middleware
// and fast-fails before any service call: a missing id means the
// middleware did not run or the token carried no identity.
func ctxIdentity(c echo.Context) (userPayload, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return userPayload{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userName, _ := c.Get("user_name").(string)
	email, _ := c.Get("email").(string)

	return userPayload{ID: id, UserName: userName, Email: email}, nil
}
