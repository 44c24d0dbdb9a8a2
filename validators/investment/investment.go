package investmentValidator

import (
	"eduvest/middleware"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateInvestmentRequest is the validated donor contribution payload.
// No minimum amount here: the UI enforces its own floor, the handler only
// rejects non-positive values.
type CreateInvestmentRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"required,len=3,alpha"`
	Purpose  string  `json:"purpose" validate:"required,min=3"`
	Message  string  `json:"message" validate:"omitempty,max=2000"`
}

// UpdateStatusRequest is the validated admin status transition payload
type UpdateStatusRequest struct {
	Status        string `json:"status" validate:"required,oneof=pending confirmed failed"`
	TransactionID string `json:"transactionId" validate:"omitempty,max=100"`
}

func CreateInvestment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateInvestmentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Currency = strings.ToUpper(strings.TrimSpace(reqData.Currency))
		reqData.Purpose = strings.TrimSpace(reqData.Purpose)

		if errors := structErrors(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInvestment", reqData)
		return c.Next()
	}
}

func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		investmentID, err := parseIDParam(c, "id")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Investment ID!", nil)
		}

		reqData := new(UpdateStatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := structErrors(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("investmentID", investmentID)
		c.Locals("validatedStatus", reqData)
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

// structErrors maps validator failures to a field -> message map
func structErrors(s interface{}) map[string]string {
	errors := make(map[string]string)
	if err := validate.Struct(s); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			field := strings.ToLower(fieldErr.Field()[:1]) + fieldErr.Field()[1:]
			switch fieldErr.Tag() {
			case "required":
				errors[field] = field + " is required!"
			case "gt":
				errors[field] = field + " must be greater than " + fieldErr.Param() + "!"
			case "len":
				errors[field] = field + " must be exactly " + fieldErr.Param() + " characters!"
			case "alpha":
				errors[field] = field + " must contain only letters!"
			case "oneof":
				errors[field] = field + " must be one of: " + fieldErr.Param()
			case "min":
				errors[field] = field + " must be at least " + fieldErr.Param() + " characters long!"
			case "max":
				errors[field] = field + " must be at most " + fieldErr.Param() + " characters long!"
			default:
				errors[field] = field + " is invalid!"
			}
		}
	}
	return errors
}
