package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/school/exams/controller"
	"vidyalaya_backend/internals/features/school/exams/repository"
	"vidyalaya_backend/internals/features/school/exams/service"
)

func ExamAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewExamSheetController(
		service.NewExamSheetService(repository.NewExamSheetRepository(db)),
	)

	g := r.Group("/exams")

	g.Post("/sheets", ctrl.Save)
	g.Get("/sheets", ctrl.List)
	g.Delete("/sheets/:id", ctrl.Delete)
}
