package userValidator

import (
	"eduvest/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AdjustCreditsRequest is the validated admin credit adjustment payload.
// Amount may be negative: it reduces the balance but never totalRewards.
type AdjustCreditsRequest struct {
	UserID uint    `json:"userId"`
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}

func AdjustCredits() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AdjustCreditsRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["userId"] = "User ID is required!"
		}
		if reqData.Amount == 0 {
			errors["amount"] = "Amount cannot be zero!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdjustCredits", reqData)
		return c.Next()
	}
}

// GetByExternalID validates the external id path parameter
func GetByExternalID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		externalID := strings.TrimSpace(c.Params("externalId"))
		if externalID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "External ID is required!", nil)
		}

		c.Locals("externalID", externalID)
		return c.Next()
	}
}
