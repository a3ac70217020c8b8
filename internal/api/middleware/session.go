package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/beautybook/marketplace/internal/core/ports"
)

// Session hydrates the session identity from the store. Anonymous sessions
// pass through with no identity and an empty role.
func Session(sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid, _ := c.Get(KeySessionID).(string)
			identity, err := sessions.Get(c.Request().Context(), sid)
			if err != nil {
				return err
			}
			if identity != nil {
				c.Set(KeyIdentity, identity)
				c.Set(KeyRole, string(identity.Role))
			}
			return next(c)
		}
	}
}
