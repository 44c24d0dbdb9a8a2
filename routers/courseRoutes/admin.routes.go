package courseRoutes

import (
	controllers "eduvest/controllers/course"
	"eduvest/middleware"
	"eduvest/models"
	validators "eduvest/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up course authoring routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/course/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	adminGroup.Post("/create", validators.CreateCourse(), controllers.AdminCreateCourse)
	adminGroup.Put("/:id", validators.UpdateCourse(), controllers.AdminUpdateCourse)
	adminGroup.Post("/:id/quiz", validators.UpsertQuiz(), controllers.AdminUpsertQuiz)
}
