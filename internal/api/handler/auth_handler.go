package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beautybook/marketplace/internal/core/domain"
	"github.com/beautybook/marketplace/internal/core/ports"
)

type AuthHandler struct {
	identity ports.IdentityService
}

func NewAuthHandler(identity ports.IdentityService) *AuthHandler {
	return &AuthHandler{identity: identity}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type signupRequest struct {
	Name         string `json:"name"          validate:"required"`
	Email        string `json:"email"         validate:"required,email"`
	Password     string `json:"password"      validate:"required,min=8"`
	Role         string `json:"role"          validate:"omitempty,oneof=client provider"`
	Location     string `json:"location"      validate:"required_if=Role provider"`
	Bio          string `json:"bio"`
	BusinessName string `json:"business_name"`
}

// authResponse is the typed result of login and signup. Failures carry only
// Error; the caller shows it inline.
type authResponse struct {
	Success        bool                 `json:"success"`
	Error          string               `json:"error,omitempty"`
	Identity       *domain.Identity     `json:"identity,omitempty"`
	RedirectPath   string               `json:"redirect_path,omitempty"`
	PendingBooking *domain.BookingDraft `json:"pending_booking,omitempty"`
}

func authFailure(c echo.Context, status int, msg string) error {
	return c.JSON(status, authResponse{Success: false, Error: msg})
}

func authSuccess(c echo.Context, status int, res *ports.AuthResult) error {
	return c.JSON(status, authResponse{
		Success:        true,
		Identity:       res.Identity,
		RedirectPath:   res.RedirectPath,
		PendingBooking: res.PendingBooking,
	})
}

// Login handles POST /v1/auth/login.
//
// @Summary      Log in
// @Description  On success the recorded post-login path and booking draft are consumed and returned.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  authResponse
// @Failure      401   {object}  authResponse
// @Failure      429   {object}  map[string]string
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return authFailure(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return authFailure(c, http.StatusBadRequest, err.Error())
	}

	res, err := h.identity.Login(c.Request().Context(), sid, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return authFailure(c, http.StatusUnauthorized, "Invalid email or password")
		}
		return err
	}
	return authSuccess(c, http.StatusOK, res)
}

// Signup handles POST /v1/auth/signup.
//
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      signupRequest  true  "Profile"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  authResponse
// @Failure      409   {object}  authResponse
// @Failure      429   {object}  map[string]string
// @Router       /v1/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return authFailure(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return authFailure(c, http.StatusBadRequest, err.Error())
	}

	res, err := h.identity.Signup(c.Request().Context(), sid, ports.SignupInput{
		Email:        req.Email,
		Password:     req.Password,
		DisplayName:  req.Name,
		Role:         domain.Role(req.Role),
		Location:     req.Location,
		Bio:          req.Bio,
		BusinessName: req.BusinessName,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyRegistered):
			return authFailure(c, http.StatusConflict, "Email already registered")
		case errors.Is(err, domain.ErrInvalidRole), errors.Is(err, domain.ErrInvalidCredentials):
			return authFailure(c, http.StatusBadRequest, err.Error())
		}
		return err
	}
	return authSuccess(c, http.StatusCreated, res)
}

// Logout handles POST /v1/auth/logout.
//
// @Summary      Log out
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.identity.Logout(c.Request().Context(), sid); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type profileRequest struct {
	Name         *string `json:"name"          validate:"omitempty,min=1"`
	Location     *string `json:"location"`
	Bio          *string `json:"bio"`
	BusinessName *string `json:"business_name"`
	Phone        *string `json:"phone"`
}

// UpdateProfile handles PATCH /v1/profile.
//
// @Summary      Edit the session identity's profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Fields to change"
// @Success      200   {object}  domain.Identity
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/profile [patch]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identity, err := h.identity.UpdateProfile(c.Request().Context(), sid, ports.ProfileUpdate{
		DisplayName:  req.Name,
		Location:     req.Location,
		Bio:          req.Bio,
		BusinessName: req.BusinessName,
		Phone:        req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}
