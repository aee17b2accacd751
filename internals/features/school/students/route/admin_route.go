package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/school/students/controller"
	"vidyalaya_backend/internals/features/school/students/repository"
	"vidyalaya_backend/internals/features/school/students/service"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(
		service.NewStudentService(repository.NewStudentRepository(db)),
	)

	g := r.Group("/students")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
