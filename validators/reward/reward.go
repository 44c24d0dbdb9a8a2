package rewardValidator

import (
	"eduvest/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func DistributeReward() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rewardID, err := parseIDParam(c, "id")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Reward ID!", nil)
		}

		c.Locals("rewardID", rewardID)
		return c.Next()
	}
}

func StudentRewards() fiber.Handler {
	return func(c *fiber.Ctx) error {
		studentID, err := parseIDParam(c, "studentId")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Student ID!", nil)
		}

		c.Locals("studentID", studentID)
		return c.Next()
	}
}

func parseIDParam(c *fiber.Ctx, name string) (int, error) {
	idStr := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return id, nil
}
