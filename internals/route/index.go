package routes

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/configs"
	"vidyalaya_backend/internals/constants"
	databases "vidyalaya_backend/internals/databases"
	authRepo "vidyalaya_backend/internals/features/users/auth/repository"
	authMiddleware "vidyalaya_backend/internals/middlewares/auth"
	routeDetails "vidyalaya_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up auth routes...")
	routeDetails.AuthRoutes(app, db)

	// revoked tokens are rejected before signature checks
	blacklist := authRepo.NewAuthRepository(db)
	checker := func(raw string) (bool, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return blacklist.IsBlacklisted(ctx, raw)
	}

	log.Println("[INFO] Setting up admin group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			BlacklistChecker:    checker,
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireRoles(constants.RoleOwner, constants.RoleAdmin),
	)

	routeDetails.SchoolAdminRoutes(admin, db, databases.Redis)
}
