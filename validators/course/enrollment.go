package courseValidator

import (
	"eduvest/middleware"

	"github.com/gofiber/fiber/v2"
)

func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := parseCourseID(c, "id")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// RecordProgressRequest is the validated progress event payload
type RecordProgressRequest struct {
	VideoID   string   `json:"videoId"`
	QuizScore *float64 `json:"quizScore"`
}

func RecordProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, err := parseCourseID(c, "id")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enrollment ID!", nil)
		}

		reqData := new(RecordProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.VideoID == "" {
			errors["videoId"] = "Video ID is required!"
		}
		if reqData.QuizScore != nil && (*reqData.QuizScore < 0 || *reqData.QuizScore > 100) {
			errors["quizScore"] = "Quiz score must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("enrollmentID", enrollmentID)
		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

// UpdateCurrentVideoRequest moves the cosmetic navigation pointer
type UpdateCurrentVideoRequest struct {
	Index int `json:"index"`
}

func UpdateCurrentVideo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, err := parseCourseID(c, "id")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enrollment ID!", nil)
		}

		reqData := new(UpdateCurrentVideoRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Index < 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"index": "Index cannot be negative!"})
		}

		c.Locals("enrollmentID", enrollmentID)
		c.Locals("validatedCurrentVideo", reqData)
		return c.Next()
	}
}
