package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"vidyalaya_backend/internals/features/users/auth/dto"
	"vidyalaya_backend/internals/features/users/auth/service"
	helper "vidyalaya_backend/internals/helpers"
)

type AuthController struct {
	Service *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

// POST /auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	res, err := ctrl.Service.Login(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "Login success", res)
}

// POST /auth/refresh-token
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	raw := refreshTokenFrom(c)
	if raw == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token missing")
	}

	res, err := ctrl.Service.Refresh(c.UserContext(), raw)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefresh) {
			return helper.Error(c, fiber.StatusUnauthorized, "Refresh token invalid or revoked")
		}
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "Token refreshed", res)
}

// POST /auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	access := bearerTokenFrom(c)
	refresh := refreshTokenFrom(c)

	if err := ctrl.Service.Logout(c.UserContext(), access, refresh); err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "Logged out", nil)
}

func bearerTokenFrom(c *fiber.Ctx) string {
	authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	return ""
}

func refreshTokenFrom(c *fiber.Ctx) string {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err == nil && strings.TrimSpace(req.RefreshToken) != "" {
		return strings.TrimSpace(req.RefreshToken)
	}
	return strings.TrimSpace(c.Cookies("refresh_token"))
}
