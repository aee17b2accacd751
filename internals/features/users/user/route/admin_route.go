package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/users/user/controller"
	"vidyalaya_backend/internals/features/users/user/repository"
	"vidyalaya_backend/internals/features/users/user/service"
)

func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(
		service.NewUserService(repository.NewUserRepository(db)),
	)

	g := r.Group("/users")

	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
