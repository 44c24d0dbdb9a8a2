package courseValidator

import (
	"eduvest/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// QuizQuestionRequest is one authored question of an upsert payload
type QuizQuestionRequest struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// UpsertQuizRequest replaces the authored quiz of one course video
type UpsertQuizRequest struct {
	VideoID      string                `json:"videoId"`
	PassingScore float64               `json:"passingScore"`
	Questions    []QuizQuestionRequest `json:"questions"`
}

// QuizAnswerRequest is one submitted answer
type QuizAnswerRequest struct {
	QuestionID     uint `json:"questionId"`
	SelectedOption int  `json:"selectedOption"`
}

// SubmitQuizRequest is the validated quiz submission payload
type SubmitQuizRequest struct {
	Answers []QuizAnswerRequest `json:"answers"`
}

func UpsertQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := parseCourseID(c, "id")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(UpsertQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.VideoID) == "" {
			errors["videoId"] = "Video ID is required!"
		}
		if reqData.PassingScore < 0 || reqData.PassingScore > 100 {
			errors["passingScore"] = "Passing score must be between 0 and 100!"
		}
		if len(reqData.Questions) == 0 {
			errors["questions"] = "At least one question is required!"
		}
		for i, q := range reqData.Questions {
			if strings.TrimSpace(q.Question) == "" {
				errors["questions"] = "Question " + strconv.Itoa(i+1) + " needs a prompt!"
				break
			}
			if len(q.Options) < 2 {
				errors["questions"] = "Question " + strconv.Itoa(i+1) + " needs at least 2 options!"
				break
			}
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
				errors["questions"] = "Question " + strconv.Itoa(i+1) + " has an out-of-range correct answer!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

func GetVideoQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := parseCourseID(c, "course_id")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		videoID := strings.TrimSpace(c.Params("video_id"))
		if videoID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video ID is required!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("videoID", videoID)
		return c.Next()
	}
}

func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := parseCourseID(c, "course_id")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		videoID := strings.TrimSpace(c.Params("video_id"))
		if videoID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video ID is required!", nil)
		}

		reqData := new(SubmitQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Answers) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"answers": "Please answer at least one question!"})
		}

		c.Locals("courseID", courseID)
		c.Locals("videoID", videoID)
		c.Locals("validatedQuizSubmit", reqData)
		return c.Next()
	}
}
