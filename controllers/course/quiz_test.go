package controllers_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"eduvest/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func seedQuiz(t *testing.T, app *fiber.App, adminToken string, courseID uint, videoKey string) {
	t.Helper()
	payload := fiber.Map{
		"videoId":      videoKey,
		"passingScore": 70.0,
		"questions": []fiber.Map{
			{
				"question":      "What does go vet do?",
				"options":       []string{"Formats code", "Reports suspicious constructs", "Runs tests"},
				"correctAnswer": 1,
				"explanation":   "vet examines source for common mistakes.",
			},
			{
				"question":      "Which keyword starts a goroutine?",
				"options":       []string{"go", "async", "spawn"},
				"correctAnswer": 0,
				"explanation":   "The go statement starts a new goroutine.",
			},
		},
	}

	resp := doJSON(t, app, "POST", fmt.Sprintf("/course/admin/%d/quiz", courseID), adminToken, payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestAdminUpsertQuizReplacesExisting(t *testing.T) {
	app, db := setupCourseTest(t)
	_, adminToken := createTestUser(t, db, "admin@test.io", models.RoleAdmin)
	course := createTestCourse(t, db, "Go Fundamentals", 2, 10)

	seedQuiz(t, app, adminToken, course.ID, "video-1")
	// Second upsert for the same video replaces, not duplicates
	seedQuiz(t, app, adminToken, course.ID, "video-1")

	var quizzes int64
	require.NoError(t, db.Model(&models.Quiz{}).
		Where("course_id = ? AND video_key = ?", course.ID, "video-1").Count(&quizzes).Error)
	require.EqualValues(t, 1, quizzes)
}

func TestGetVideoQuizHidesAnswers(t *testing.T) {
	app, db := setupCourseTest(t)
	_, adminToken := createTestUser(t, db, "admin@test.io", models.RoleAdmin)
	_, studentToken := createTestUser(t, db, "student@test.io", models.RoleStudent)
	course := createTestCourse(t, db, "Go Fundamentals", 2, 10)
	seedQuiz(t, app, adminToken, course.ID, "video-1")

	quizPath := fmt.Sprintf("/course/%d/video/video-1/quiz", course.ID)

	// Must be enrolled first
	resp := doJSON(t, app, "GET", quizPath, studentToken, nil)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", quizPath, studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Questions []struct {
				Question      string `json:"question"`
				CorrectAnswer int    `json:"correctAnswer"`
				Explanation   string `json:"explanation"`
			} `json:"questions"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data.Questions, 2)
	for _, q := range body.Data.Questions {
		require.Equal(t, -1, q.CorrectAnswer)
		require.Empty(t, q.Explanation)
	}
}

func TestSubmitQuizGatesCompletionOnPassingScore(t *testing.T) {
	app, db := setupCourseTest(t)
	_, adminToken := createTestUser(t, db, "admin@test.io", models.RoleAdmin)
	_, studentToken := createTestUser(t, db, "student@test.io", models.RoleStudent)
	course := createTestCourse(t, db, "Quiz Course", 1, 10)
	seedQuiz(t, app, adminToken, course.ID, "video-1")

	resp := doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var enrollment models.Enrollment
	require.NoError(t, db.Where("course_id = ?", course.ID).First(&enrollment).Error)

	var quiz models.Quiz
	require.NoError(t, db.Preload("Questions").
		Where("course_id = ? AND video_key = ?", course.ID, "video-1").First(&quiz).Error)

	submitPath := fmt.Sprintf("/course/%d/video/video-1/quiz/submit", course.ID)

	// One of two correct: 50% is below the 70% passing score
	resp = doJSON(t, app, "POST", submitPath, studentToken, fiber.Map{
		"answers": []fiber.Map{
			{"questionId": quiz.Questions[0].ID, "selectedOption": quiz.Questions[0].CorrectOption},
			{"questionId": quiz.Questions[1].ID, "selectedOption": 2},
		},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var current models.Enrollment
	require.NoError(t, db.First(&current, enrollment.ID).Error)
	require.False(t, current.IsCompleted)
	require.Equal(t, 0.0, current.Progress)

	var score models.EnrollmentQuizScore
	require.NoError(t, db.Where("enrollment_id = ? AND video_key = ?", enrollment.ID, "video-1").First(&score).Error)
	require.Equal(t, 50.0, score.Score)
	require.Equal(t, 1, score.Attempts)

	// All correct: passes and completes the single-video course
	resp = doJSON(t, app, "POST", submitPath, studentToken, fiber.Map{
		"answers": []fiber.Map{
			{"questionId": quiz.Questions[0].ID, "selectedOption": quiz.Questions[0].CorrectOption},
			{"questionId": quiz.Questions[1].ID, "selectedOption": quiz.Questions[1].CorrectOption},
		},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&current, enrollment.ID).Error)
	require.True(t, current.IsCompleted)
	require.InDelta(t, 100.0, current.Progress, 0.001)

	require.NoError(t, db.Where("enrollment_id = ? AND video_key = ?", enrollment.ID, "video-1").First(&score).Error)
	require.Equal(t, 100.0, score.Score)
	require.Equal(t, 2, score.Attempts)
}
