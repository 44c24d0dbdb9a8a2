package rewardRoutes

import (
	rewardController "eduvest/controllers/reward"
	"eduvest/middleware"
	"eduvest/models"
	rewardValidator "eduvest/validators/reward"

	"github.com/gofiber/fiber/v2"
)

func SetupRewardRoutes(app *fiber.App) {
	rewardGroup := app.Group("/reward")

	// Admin routes
	adminGroup := rewardGroup.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))
	adminGroup.Get("/pending", rewardController.GetPendingRewards)
	adminGroup.Post("/:id/distribute", rewardValidator.DistributeReward(), rewardController.DistributeReward)
	adminGroup.Get("/student/:studentId", rewardValidator.StudentRewards(), rewardController.GetStudentRewards)

	// User routes
	userGroup := app.Group("/user")
	userGroup.Get("/rewards", middleware.JWTMiddleware, rewardController.GetMyRewards)
}
