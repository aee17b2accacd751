package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/school/houses/controller"
	"vidyalaya_backend/internals/features/school/houses/repository"
	"vidyalaya_backend/internals/features/school/houses/service"
)

func HouseAdminRoutes(r fiber.Router, db *gorm.DB) {
	houseCtrl := controller.NewHouseController(
		service.NewHouseService(repository.NewHouseRepository(db)),
	)
	assignCtrl := controller.NewAssignmentController(
		service.NewAssignmentService(repository.NewAssignmentRepository(db)),
	)

	g := r.Group("/houses")

	// squads and assignments first, ":id" would swallow them otherwise
	g.Post("/squads", houseCtrl.CreateSquad)
	g.Get("/squads", houseCtrl.ListSquads)
	g.Delete("/squads/:id", houseCtrl.DeleteSquad)

	g.Post("/assignments", assignCtrl.Assign)
	g.Post("/assignments/bulk", assignCtrl.BulkAssign)
	g.Get("/assignments", assignCtrl.List)

	g.Post("/", houseCtrl.Create)
	g.Get("/", houseCtrl.List)
	g.Patch("/:id", houseCtrl.Update)
	g.Delete("/:id", houseCtrl.Delete)
}
