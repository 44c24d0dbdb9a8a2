package investmentRoutes

import (
	investmentController "eduvest/controllers/investment"
	"eduvest/middleware"
	"eduvest/models"
	investmentValidator "eduvest/validators/investment"

	"github.com/gofiber/fiber/v2"
)

func SetupInvestmentRoutes(app *fiber.App) {
	investmentGroup := app.Group("/investment")

	// User routes
	investmentGroup.Post("/create", middleware.JWTMiddleware, investmentValidator.CreateInvestment(), investmentController.CreateInvestment)
	investmentGroup.Get("/total", middleware.JWTMiddleware, investmentController.GetTotalInvestments)

	// Admin routes
	adminGroup := investmentGroup.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))
	adminGroup.Get("/list", investmentController.GetAllInvestments)
	adminGroup.Put("/:id/status", investmentValidator.UpdateStatus(), investmentController.UpdateInvestmentStatus)
}
