package controllers

import (
	"eduvest/database"
	"eduvest/middleware"
	"eduvest/models"
	courseValidator "eduvest/validators/course"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminUpsertQuiz replaces the authored quiz of one course video
func AdminUpsertQuiz(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	reqData, ok := c.Locals("validatedQuiz").(*courseValidator.UpsertQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var video models.CourseVideo
	if err := database.Database.Db.Where("course_id = ? AND video_key = ? AND is_deleted = ?", courseID, reqData.VideoID, false).First(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found in this course!", nil)
	}

	quiz := models.Quiz{
		CourseID:     uint(courseID),
		VideoKey:     reqData.VideoID,
		PassingScore: reqData.PassingScore,
	}
	for i, q := range reqData.Questions {
		optionsJSON, err := json.Marshal(q.Options)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question options!", nil)
		}
		quiz.Questions = append(quiz.Questions, models.QuizQuestion{
			Prompt:        q.Question,
			Options:       optionsJSON,
			CorrectOption: q.CorrectAnswer,
			Explanation:   q.Explanation,
			OrderIndex:    i,
		})
	}

	tx := database.Database.Db.Begin()

	// Replace any previous quiz for this video
	var existing models.Quiz
	if err := tx.Where("course_id = ? AND video_key = ?", courseID, reqData.VideoID).First(&existing).Error; err == nil {
		if err := tx.Where("quiz_id = ?", existing.ID).Delete(&models.QuizQuestion{}).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to replace quiz!", nil)
		}
		if err := tx.Unscoped().Delete(&existing).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to replace quiz!", nil)
		}
	}

	if err := tx.Create(&quiz).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating quiz: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz saved successfully!", quiz)
}

// GetVideoQuiz returns the authored quiz of a video with correct answers
// and explanations stripped for learners
func GetVideoQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	videoID := c.Locals("videoID").(string)

	// Check enrollment
	var enrollment models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var quiz models.Quiz
	if err := database.Database.Db.Where("course_id = ? AND video_key = ? AND is_deleted = ?", courseID, videoID, false).
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc") }).
		First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No quiz for this video!", nil)
	}

	// Hide answers from learners
	for i := range quiz.Questions {
		quiz.Questions[i].CorrectOption = -1
		quiz.Questions[i].Explanation = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", quiz)
}

// SubmitQuiz grades a submission against the authored quiz and feeds the
// result through the progress transition. The video counts as completed
// only when the score meets the quiz's passing score.
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	videoID := c.Locals("videoID").(string)
	reqData, ok := c.Locals("validatedQuizSubmit").(*courseValidator.SubmitQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var enrollment models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var quiz models.Quiz
	if err := database.Database.Db.Where("course_id = ? AND video_key = ? AND is_deleted = ?", courseID, videoID, false).
		Preload("Questions").First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No quiz for this video!", nil)
	}

	selected := make(map[uint]int, len(reqData.Answers))
	for _, answer := range reqData.Answers {
		selected[answer.QuestionID] = answer.SelectedOption
	}

	correctCount := 0
	for _, question := range quiz.Questions {
		if chosen, answered := selected[question.ID]; answered && chosen == question.CorrectOption {
			correctCount++
		}
	}

	score := float64(correctCount) / float64(len(quiz.Questions)) * 100
	passed := score >= quiz.PassingScore

	tx := database.Database.Db.Begin()
	if err := applyProgress(tx, &enrollment, &course, videoID, &score, passed); err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", fiber.Map{
		"score":         score,
		"passed":        passed,
		"correctCount":  correctCount,
		"questionCount": len(quiz.Questions),
		"enrollment":    enrollment,
	})
}
