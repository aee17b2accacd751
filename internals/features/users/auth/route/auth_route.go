package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/users/auth/controller"
	"vidyalaya_backend/internals/features/users/auth/repository"
	"vidyalaya_backend/internals/features/users/auth/service"
	"vidyalaya_backend/internals/middlewares"
)

func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(
		service.NewAuthService(repository.NewAuthRepository(db)),
	)

	g := r.Group("/auth")

	g.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	g.Post("/refresh-token", ctrl.Refresh)
	g.Post("/logout", ctrl.Logout)
}
