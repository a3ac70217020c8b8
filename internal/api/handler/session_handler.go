package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/beautybook/marketplace/internal/api/middleware"
	"github.com/beautybook/marketplace/internal/core/domain"
	"github.com/beautybook/marketplace/internal/core/ports"
)

// SessionHandler issues session tokens and reports the session identity.
type SessionHandler struct {
	identity ports.IdentityService
	secret   string
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionHandler(identity ports.IdentityService, secret string, ttl time.Duration) *SessionHandler {
	return &SessionHandler{identity: identity, secret: secret, ttl: ttl, now: time.Now}
}

type createSessionResponse struct {
	SessionID string     `json:"session_id"`
	Token     string     `json:"token"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type sessionResponse struct {
	Identity *domain.Identity `json:"identity"`
	Loading  bool             `json:"loading"`
}

// Create handles POST /v1/sessions.
//
// @Summary      Open an anonymous session
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  createSessionResponse
// @Failure      500  {object}  map[string]string
// @Router       /v1/sessions [post]
func (h *SessionHandler) Create(c echo.Context) error {
	now := h.now().UTC()
	sid := uuid.New().String()
	token, err := middleware.SignSessionToken(h.secret, sid, now, h.ttl)
	if err != nil {
		return err
	}

	resp := createSessionResponse{SessionID: sid, Token: token}
	if h.ttl > 0 {
		exp := now.Add(h.ttl)
		resp.ExpiresAt = &exp
	}
	return c.JSON(http.StatusCreated, resp)
}

// Get handles GET /v1/session.
//
// @Summary      Current session identity
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	identity, err := h.identity.Current(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Identity: identity})
}
