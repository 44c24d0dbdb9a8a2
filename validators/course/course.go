package courseValidator

import (
	"eduvest/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CourseVideoRequest is one ordered video entry of a create payload
type CourseVideoRequest struct {
	ID       string `json:"id"` // optional, generated when blank
	Title    string `json:"title"`
	VideoID  string `json:"videoId"`
	Duration int    `json:"duration"`
	Order    int    `json:"order"`
}

// CreateCourseRequest is the validated course creation payload
type CreateCourseRequest struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Instructor  string               `json:"instructor"`
	PlaylistID  string               `json:"youtubePlaylistId"`
	Videos      []CourseVideoRequest `json:"videos"`
	Difficulty  string               `json:"difficulty"`
	Reward      float64              `json:"reward"`
	TimeLimit   int                  `json:"timeLimit"`
	Category    string               `json:"category"`
	Tags        []string             `json:"tags"`
}

// UpdateCourseRequest is the validated partial update payload.
// Pointer fields distinguish "absent" from zero values.
type UpdateCourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Instructor  string   `json:"instructor"`
	Category    string   `json:"category"`
	Difficulty  string   `json:"difficulty"`
	Reward      *float64 `json:"reward"`
	TimeLimit   *int     `json:"timeLimit"`
	IsActive    *bool    `json:"isActive"`
	Tags        []string `json:"tags"`
}

func isValidDifficulty(d string) bool {
	return d == "beginner" || d == "intermediate" || d == "advanced"
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Description
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if strings.TrimSpace(reqData.Instructor) == "" {
			errors["instructor"] = "Instructor is required!"
		}

		if !isValidDifficulty(reqData.Difficulty) {
			errors["difficulty"] = "Difficulty must be beginner, intermediate or advanced!"
		}

		if reqData.Reward < 0 {
			errors["reward"] = "Reward cannot be negative!"
		}

		if reqData.TimeLimit <= 0 {
			errors["timeLimit"] = "Time limit must be greater than 0 days!"
		}

		// Videos may be omitted only when a playlist id is given for import
		if len(reqData.Videos) == 0 && strings.TrimSpace(reqData.PlaylistID) == "" {
			errors["videos"] = "At least one video or a playlist ID is required!"
		}
		for i, video := range reqData.Videos {
			if strings.TrimSpace(video.Title) == "" || strings.TrimSpace(video.VideoID) == "" {
				errors["videos"] = "Video " + strconv.Itoa(i+1) + " needs a title and a videoId!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := parseCourseID(c, "id")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Difficulty != "" && !isValidDifficulty(reqData.Difficulty) {
			errors["difficulty"] = "Difficulty must be beginner, intermediate or advanced!"
		}
		if reqData.Reward != nil && *reqData.Reward < 0 {
			errors["reward"] = "Reward cannot be negative!"
		}
		if reqData.TimeLimit != nil && *reqData.TimeLimit <= 0 {
			errors["timeLimit"] = "Time limit must be greater than 0 days!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// GetCourseDetail validates the course id path parameter
func GetCourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := parseCourseID(c, "id")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// SearchCourses validates the search term query parameter
func SearchCourses() fiber.Handler {
	return func(c *fiber.Ctx) error {
		term := strings.TrimSpace(c.Query("term"))
		if term == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Search term is required!", nil)
		}

		c.Locals("searchTerm", term)
		return c.Next()
	}
}

func parseCourseID(c *fiber.Ctx, name string) (int, error) {
	idStr := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return id, nil
}
