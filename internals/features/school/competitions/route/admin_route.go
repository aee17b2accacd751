package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/school/competitions/controller"
	"vidyalaya_backend/internals/features/school/competitions/repository"
	"vidyalaya_backend/internals/features/school/competitions/service"
)

func CompetitionAdminRoutes(r fiber.Router, db *gorm.DB, cache *redis.Client) {
	compCtrl := controller.NewCompetitionController(
		service.NewCompetitionService(repository.NewCompetitionRepository(db)),
	)
	resultCtrl := controller.NewResultController(
		service.NewResultService(repository.NewResultRepository(db), cache),
	)

	g := r.Group("/competitions")

	// house-points first, ":id" would swallow it otherwise
	g.Get("/house-points", resultCtrl.HousePoints)

	g.Post("/:id/results", resultCtrl.Record)
	g.Get("/:id/results", resultCtrl.ListByYear)

	g.Post("/", compCtrl.Create)
	g.Get("/", compCtrl.List)
	g.Get("/:id", compCtrl.GetByID)
	g.Patch("/:id", compCtrl.Update)
	g.Delete("/:id", compCtrl.Delete)
}
