package courseRoutes

import (
	controllers "eduvest/controllers/course"
	"eduvest/middleware"
	validators "eduvest/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	userGroup := app.Group("/course")

	// Course listing, search and details (active courses)
	userGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllCourses)
	userGroup.Get("/search", middleware.JWTMiddleware, validators.SearchCourses(), controllers.SearchCourses)
	userGroup.Get("/:id", middleware.JWTMiddleware, validators.GetCourseDetail(), controllers.GetCourseDetails)

	// Enrollment
	userGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.EnrollInCourse)

	// Authored quizzes (for enrolled users)
	userGroup.Get("/:course_id/video/:video_id/quiz", middleware.JWTMiddleware, validators.GetVideoQuiz(), controllers.GetVideoQuiz)
	userGroup.Post("/:course_id/video/:video_id/quiz/submit", middleware.JWTMiddleware, validators.SubmitQuiz(), controllers.SubmitQuiz)

	// Progress tracking
	enrollmentGroup := app.Group("/enrollment")
	enrollmentGroup.Post("/:id/progress", middleware.JWTMiddleware, validators.RecordProgress(), controllers.RecordProgress)
	enrollmentGroup.Patch("/:id/current-video", middleware.JWTMiddleware, validators.UpdateCurrentVideo(), controllers.UpdateCurrentVideo)

	// User enrollments
	userEnrollGroup := app.Group("/user")
	userEnrollGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetEnrollments)
}
