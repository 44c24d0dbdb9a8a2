package userRoutes

import (
	userController "eduvest/controllers/userControllers"
	"eduvest/middleware"
	"eduvest/models"
	userValidator "eduvest/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userController.GetProfile)
	userGroup.Get("/by-external/:externalId", middleware.JWTMiddleware, userValidator.GetByExternalID(), userController.GetUserByExternalID)

	// Admin routes
	adminGroup := userGroup.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))
	adminGroup.Get("/students", userController.ListStudents)
	adminGroup.Get("/investors", userController.ListInvestors)
	adminGroup.Post("/adjust-credits", userValidator.AdjustCredits(), userController.AdjustCredits)
}
