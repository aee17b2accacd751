package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/school/parents/controller"
	"vidyalaya_backend/internals/features/school/parents/repository"
	"vidyalaya_backend/internals/features/school/parents/service"
)

func ParentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewParentController(
		service.NewParentService(repository.NewParentRepository(db)),
	)

	g := r.Group("/parents")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
