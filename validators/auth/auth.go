package authValidator

import (
	"eduvest/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// RegisterRequest is the validated signup payload
type RegisterRequest struct {
	ExternalID string `json:"externalId" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Name       string `json:"name" validate:"required,min=2"`
	Role       string `json:"role" validate:"omitempty,oneof=STUDENT ADMIN INVESTOR"`
	Password   string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the validated login payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		reqData.Name = strings.TrimSpace(reqData.Name)

		if errors := structErrors(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))

		if errors := structErrors(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
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
			case "email":
				errors[field] = "Invalid email address!"
			case "min":
				errors[field] = field + " must be at least " + fieldErr.Param() + " characters long!"
			case "oneof":
				errors[field] = field + " must be one of: " + fieldErr.Param()
			default:
				errors[field] = field + " is invalid!"
			}
		}
	}
	return errors
}
