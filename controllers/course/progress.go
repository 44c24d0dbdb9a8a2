package controllers

import (
	"eduvest/database"
	"eduvest/middleware"
	"eduvest/models"
	courseValidator "eduvest/validators/course"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RecordProgress marks a video of an enrollment complete, optionally records
// a quiz score, recomputes aggregate progress and issues the completion
// reward the first time progress reaches 100%.
func RecordProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)
	reqData, ok := c.Locals("validatedProgress").(*courseValidator.RecordProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var enrollment models.Enrollment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", enrollmentID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if enrollment.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enrollment belongs to another user!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", enrollment.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	tx := database.Database.Db.Begin()
	if err := applyProgress(tx, &enrollment, &course, reqData.VideoID, reqData.QuizScore, true); err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress recorded successfully!", fiber.Map{
		"enrollment":      enrollment,
		"completedVideos": completedVideoKeys(database.Database.Db, enrollment.ID),
	})
}

// UpdateCurrentVideo moves the navigation pointer. The pointer is cosmetic:
// it never gates which videos the learner may complete.
func UpdateCurrentVideo(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)
	reqData, ok := c.Locals("validatedCurrentVideo").(*courseValidator.UpdateCurrentVideoRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var enrollment models.Enrollment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", enrollmentID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if enrollment.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enrollment belongs to another user!", nil)
	}

	if err := database.Database.Db.Model(&enrollment).Update("current_video_index", reqData.Index).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update current video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Current video updated!", enrollment)
}

// applyProgress is the single transition function of the enrollment
// lifecycle. Inside the caller's transaction it:
//   - adds videoKey to the completed set when markComplete is true
//     (idempotent, the set only grows)
//   - upserts the best-of quiz score and bumps its attempt counter
//   - recomputes progress as completed/total * 100
//   - flips isCompleted once, stamping the completion time
//   - inserts the course_completion reward on that transition; the
//     (enrollment, type) unique index rejects a racing duplicate
func applyProgress(tx *gorm.DB, enrollment *models.Enrollment, course *models.Course, videoKey string, quizScore *float64, markComplete bool) error {
	if markComplete {
		var existing models.VideoCompletion
		if err := tx.Where("enrollment_id = ? AND video_key = ?", enrollment.ID, videoKey).First(&existing).Error; err != nil {
			completion := models.VideoCompletion{
				EnrollmentID: enrollment.ID,
				VideoKey:     videoKey,
			}
			if err := tx.Create(&completion).Error; err != nil {
				return err
			}
		}
	}

	if quizScore != nil {
		var score models.EnrollmentQuizScore
		if err := tx.Where("enrollment_id = ? AND video_key = ?", enrollment.ID, videoKey).First(&score).Error; err == nil {
			if *quizScore > score.Score {
				score.Score = *quizScore
			}
			score.Attempts++
			if err := tx.Save(&score).Error; err != nil {
				return err
			}
		} else {
			score = models.EnrollmentQuizScore{
				EnrollmentID: enrollment.ID,
				VideoKey:     videoKey,
				Score:        *quizScore,
				Attempts:     1,
			}
			if err := tx.Create(&score).Error; err != nil {
				return err
			}
		}
	}

	var totalVideos int64
	tx.Model(&models.CourseVideo{}).Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&totalVideos)

	var completedVideos int64
	tx.Model(&models.VideoCompletion{}).Where("enrollment_id = ?", enrollment.ID).Count(&completedVideos)

	if totalVideos > 0 {
		enrollment.Progress = float64(completedVideos) / float64(totalVideos) * 100
	}

	wasCompleted := enrollment.IsCompleted
	if enrollment.Progress >= 100 {
		enrollment.IsCompleted = true
		enrollment.Status = models.EnrollmentStatusCompleted
		if enrollment.CompletedAt == nil {
			now := time.Now()
			enrollment.CompletedAt = &now
		}
	} else if enrollment.Progress > 0 {
		enrollment.Status = models.EnrollmentStatusInProgress
	}

	if err := tx.Save(enrollment).Error; err != nil {
		return err
	}

	if enrollment.IsCompleted && !wasCompleted && !enrollment.RewardClaimed {
		reward := models.Reward{
			StudentID:    enrollment.UserID,
			CourseID:     enrollment.CourseID,
			EnrollmentID: enrollment.ID,
			Amount:       course.Reward,
			Type:         models.RewardTypeCourseCompletion,
			Status:       models.RewardStatusPending,
		}
		if err := tx.Create(&reward).Error; err != nil {
			return err
		}
	}

	return nil
}
