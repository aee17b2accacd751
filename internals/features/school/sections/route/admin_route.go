package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/school/sections/controller"
	"vidyalaya_backend/internals/features/school/sections/repository"
	"vidyalaya_backend/internals/features/school/sections/service"
)

func SectionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSectionController(
		service.NewSectionService(repository.NewSectionRepository(db)),
	)

	g := r.Group("/sections")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
