package controllers

import (
	"eduvest/database"
	"eduvest/middleware"
	"eduvest/models"
	"eduvest/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollInCourse binds the caller to a course. The (user, course) unique
// index backs up the duplicate lookup, and the enrollment counter is
// incremented column-relative so concurrent enrollments never lose updates.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	// Check if course exists and is active
	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_active = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not active!", nil)
	}

	// Check if user is already enrolled
	var existingEnrollment models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	now := time.Now()
	enrollment := models.Enrollment{
		UserID:    userID,
		CourseID:  uint(courseID),
		Status:    models.EnrollmentStatusEnrolled,
		StartedAt: now,
		Deadline:  now.AddDate(0, 0, course.TimeLimitDays),
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		// unique (user, course) index: lost a race with a concurrent enroll
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}
	if err := tx.Model(&models.Course{}).Where("id = ?", course.ID).
		UpdateColumn("enrollment_count", gorm.Expr("enrollment_count + ?", 1)).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}
	tx.Commit()

	go utils.SendEnrollmentEmail(user.Email, user.Name, course.Title, enrollment.Deadline)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrollments lists the caller's enrollments joined with their courses
// and the completed video ids of each
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("Course").Preload("Course.Videos", videosOrdered).Preload("QuizScores").
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type enrollmentWithCompletions struct {
		models.Enrollment
		CompletedVideos []string `json:"completedVideos"`
	}

	result := make([]enrollmentWithCompletions, len(enrollments))
	for i, enrollment := range enrollments {
		result[i] = enrollmentWithCompletions{
			Enrollment:      enrollment,
			CompletedVideos: completedVideoKeys(database.Database.Db, enrollment.ID),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", result)
}

func completedVideoKeys(db *gorm.DB, enrollmentID uint) []string {
	var completions []models.VideoCompletion
	db.Where("enrollment_id = ?", enrollmentID).Find(&completions)

	keys := make([]string, len(completions))
	for i, completion := range completions {
		keys[i] = completion.VideoKey
	}
	return keys
}
