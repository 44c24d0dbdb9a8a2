package controllers

import (
	"eduvest/database"
	"eduvest/middleware"
	"eduvest/models"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func videosOrdered(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false).Order("order_index asc")
}

// GetAllCourses lists every active course with its ordered videos.
// Filtering by category or difficulty happens client-side over this set.
func GetAllCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var courses []models.Course
	if err := database.Database.Db.Where("is_active = ? AND is_deleted = ?", true, false).
		Preload("Videos", videosOrdered).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseDetails gets one course with videos and the caller's enrollment state
func GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).
		Preload("Videos", videosOrdered).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Check if user is enrolled
	var enrollment models.Enrollment
	isEnrolled := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error == nil

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":      course,
		"is_enrolled": isEnrolled,
		"enrollment":  enrollment,
	})
}

// SearchCourses does a case-insensitive substring match over title,
// description, category and tags of the active courses
func SearchCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	term := strings.ToLower(c.Locals("searchTerm").(string))

	var courses []models.Course
	if err := database.Database.Db.Where("is_active = ? AND is_deleted = ?", true, false).
		Preload("Videos", videosOrdered).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to search courses!", nil)
	}

	matched := make([]models.Course, 0)
	for _, course := range courses {
		if courseMatches(course, term) {
			matched = append(matched, course)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", matched)
}

func courseMatches(course models.Course, term string) bool {
	if strings.Contains(strings.ToLower(course.Title), term) ||
		strings.Contains(strings.ToLower(course.Description), term) ||
		strings.Contains(strings.ToLower(course.Category), term) {
		return true
	}

	var tags []string
	if len(course.Tags) > 0 {
		if err := json.Unmarshal(course.Tags, &tags); err != nil {
			return false
		}
	}
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
