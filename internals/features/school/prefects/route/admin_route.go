package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/school/prefects/controller"
	"vidyalaya_backend/internals/features/school/prefects/repository"
	"vidyalaya_backend/internals/features/school/prefects/service"
)

func PrefectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPrefectController(
		service.NewPrefectService(repository.NewPrefectRepository(db)),
	)

	pos := r.Group("/prefect-positions")
	pos.Post("/", ctrl.CreatePosition)
	pos.Get("/", ctrl.ListPositions)
	pos.Delete("/:id", ctrl.DeletePosition)

	years := r.Group("/prefect-years")
	years.Get("/", ctrl.ListYears)
	years.Post("/:year/students", ctrl.Appoint)
	years.Delete("/:year/students/:studentId", ctrl.Dismiss)
	years.Get("/:year", ctrl.GetYear)
}
