package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/school/grades/controller"
	"vidyalaya_backend/internals/features/school/grades/repository"
	"vidyalaya_backend/internals/features/school/grades/service"
)

func GradeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGradeController(
		service.NewGradeService(repository.NewGradeRepository(db)),
	)

	g := r.Group("/grades")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
