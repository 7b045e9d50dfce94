package auth

import (
	"context"

	"godown-backend/internal/middleware"
	"godown-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const userSessionsPrefix = "user_sessions:"

// Handlers holds dependencies for auth endpoints.
type Handlers struct {
	Service *Service
	Rdb     *redis.Client
	Config  middleware.SessionConfig
}

// RequestOTPRequest body.
type RequestOTPRequest struct {
	Mobile string `json:"mobile"`
}

// RequestOTP POST /api/v1/auth/request-otp — validate mobile, issue and deliver OTP.
func (h *Handlers) RequestOTP(c *fiber.Ctx) error {
	var req RequestOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, ErrInvalidMobile.Error(), fiber.StatusBadRequest, nil)
	}
	if err := h.Service.RequestOTP(c.Context(), req.Mobile); err != nil {
		switch err {
		case ErrInvalidMobile:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "OTP sent to your mobile", fiber.Map{"mobile": req.Mobile}, nil)
}

// VerifyOTPRequest body.
type VerifyOTPRequest struct {
	Mobile string `json:"mobile"`
	OTP    string `json:"otp"`
}

// VerifyOTP POST /api/v1/auth/verify-otp — check code, create session, set cookie.
func (h *Handlers) VerifyOTP(c *fiber.Ctx) error {
	if h.Service.DB == nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	var req VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, ErrMissingMobileOrOTP.Error(), fiber.StatusBadRequest, nil)
	}

	user, err := h.Service.VerifyOTP(c.Context(), req.Mobile, req.OTP)
	if err != nil {
		switch err {
		case ErrMissingMobileOrOTP:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrInvalidOTP:
			return response.Error(c, err.Error(), fiber.StatusUnauthorized, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}

	return h.createSession(c, *user)
}

// AdminLoginRequest body.
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLogin POST /api/v1/auth/admin-login — password login for admin accounts.
func (h *Handlers) AdminLogin(c *fiber.Ctx) error {
	if h.Service.DB == nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	var req AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, ErrEmailPasswordRequired.Error(), fiber.StatusBadRequest, nil)
	}

	u, err := h.Service.AdminLogin(c.Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case ErrEmailPasswordRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrInvalidEmail, ErrIncorrectPassword:
			return response.Error(c, err.Error(), fiber.StatusUnauthorized, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}

	return h.createSession(c, middleware.SessionUser{
		Mobile: u.Mobile,
		Name:   u.Name,
		Role:   "admin",
	})
}

// createSession regenerates the session ID, stores the user, tracks the
// session in Redis and sets the cookie.
func (h *Handlers) createSession(c *fiber.Ctx, user middleware.SessionUser) error {
	sessionID := middleware.RegenerateSessionID(c)
	middleware.SetSessionUser(c, user)

	ctx := context.Background()
	if err := h.Rdb.SAdd(ctx, userSessionsPrefix+user.Mobile, sessionID).Err(); err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}

	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.Value = "s:" + sessionID
	c.Cookie(&cookie)

	return response.Success(c, "Login successful", fiber.Map{"user": user}, nil)
}

// Me GET /api/v1/auth/me — return the current session user.
func (h *Handlers) Me(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return response.Error(c, ErrNotAuthenticated.Error(), fiber.StatusUnauthorized, nil)
	}
	return response.Success(c, "Authenticated", fiber.Map{"user": user}, nil)
}

// Logout DELETE /api/v1/auth/logout — drop the session and clear the cookie.
func (h *Handlers) Logout(c *fiber.Ctx) error {
	sessionID := middleware.GetSessionID(c)
	ctx := context.Background()

	if mobile := middleware.GetMobile(c); mobile != "" && sessionID != "" {
		_ = h.Rdb.SRem(ctx, userSessionsPrefix+mobile, sessionID).Err()
	}
	if sessionID != "" {
		_ = h.Rdb.Del(ctx, middleware.SessionRedisPrefix+sessionID).Err()
	}
	middleware.DestroySession(c)

	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.Value = ""
	cookie.MaxAge = -1
	c.Cookie(&cookie)

	return response.Success(c, "Logged out", nil, nil)
}
