package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/school/attendance/controller"
	"vidyalaya_backend/internals/features/school/attendance/repository"
	"vidyalaya_backend/internals/features/school/attendance/service"
)

func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(
		service.NewAttendanceService(repository.NewAttendanceRepository(db)),
	)

	g := r.Group("/attendance")

	g.Post("/", ctrl.Mark)
	g.Get("/", ctrl.List)
	g.Delete("/:id", ctrl.Delete)
}
