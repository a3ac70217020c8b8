package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// ipShare is how many sessions' worth of budget one client address gets.
const ipShare = 4

// AuthRateLimit throttles credential endpoints per session and per client
// address. perSecond is the sustained per-session rate and bursts of twice
// that are allowed; an address gets ipShare times both. Install the returned
// middleware on session issuance as well, so minting fresh sessions draws
// from the same address budget.
func AuthRateLimit(perSecond float64) echo.MiddlewareFunc {
	burst := int(perSecond * 2)
	if burst < 1 {
		burst = 1
	}
	perSession := rateLimiter(perSecond, burst, func(c echo.Context) (string, error) {
		if sid, ok := c.Get(KeySessionID).(string); ok && sid != "" {
			return "sid:" + sid, nil
		}
		return "ip:" + c.RealIP(), nil
	})
	perAddress := rateLimiter(perSecond*ipShare, burst*ipShare, func(c echo.Context) (string, error) {
		return "ip:" + c.RealIP(), nil
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return perAddress(perSession(next))
	}
}

func rateLimiter(perSecond float64, burst int, identify echomiddleware.Extractor) echo.MiddlewareFunc {
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store:               store,
		IdentifierExtractor: identify,
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "unable to identify caller"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many requests, please try again later"})
		},
	})
}
