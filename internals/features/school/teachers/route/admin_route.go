package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/school/teachers/controller"
	"vidyalaya_backend/internals/features/school/teachers/repository"
	"vidyalaya_backend/internals/features/school/teachers/service"
)

func TeacherAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherController(
		service.NewTeacherService(repository.NewTeacherRepository(db)),
	)

	g := r.Group("/teachers")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
