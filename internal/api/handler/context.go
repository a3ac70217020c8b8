package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/beautybook/marketplace/internal/api/middleware"
	"github.com/beautybook/marketplace/internal/core/domain"
)

// ctxSession extracts the session id injected by the Auth middleware. Its
// absence means the route was mounted without Auth.
func ctxSession(c echo.Context) (string, error) {
	sid, _ := c.Get(middleware.KeySessionID).(string)
	if sid == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sid, nil
}

// ctxIdentity returns the identity hydrated by the Session middleware, or nil
// for an anonymous session.
func ctxIdentity(c echo.Context) *domain.Identity {
	identity, _ := c.Get(middleware.KeyIdentity).(*domain.Identity)
	return identity
}

// paramID parses a positive integer path parameter.
func paramID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return id, nil
}
