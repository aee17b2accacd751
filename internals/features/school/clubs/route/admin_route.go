package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/school/clubs/controller"
	"vidyalaya_backend/internals/features/school/clubs/repository"
	"vidyalaya_backend/internals/features/school/clubs/service"
)

func ClubAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClubController(
		service.NewClubService(repository.NewClubRepository(db)),
	)

	g := r.Group("/clubs")

	// positions first, ":id" would swallow them otherwise
	g.Post("/positions", ctrl.CreatePosition)
	g.Get("/positions", ctrl.ListPositions)
	g.Delete("/positions/:id", ctrl.DeletePosition)

	g.Post("/:id/members", ctrl.AssignMember)
	g.Delete("/:id/members/:studentId", ctrl.RemoveMember)

	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
