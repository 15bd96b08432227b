package middleware

import (
	"med-estudia/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware checks path parameters before they reach handlers.
type ValidationMiddleware struct {
	validator *validation.Validator
}

func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateQuestionID checks the :id parameter of saved-question routes.
func (vm *ValidationMiddleware) ValidateQuestionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if err := vm.validator.ValidateQuestionID(id); err != nil {
			return err // This will be handled by ErrorHandler
		}
		c.Locals("validated_question_id", id)
		return c.Next()
	}
}
