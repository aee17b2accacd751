package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AuthRoute "vidyalaya_backend/internals/features/users/auth/route"
)

// AuthRoutes mounts the public auth endpoints under /api/auth.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")
	AuthRoute.AuthRoutes(api, db)
}
