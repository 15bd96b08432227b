package handler

import (
	"med-estudia/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LearnerHandler struct {
	authService service.AuthService
}

func NewLearnerHandler(authService service.AuthService) *LearnerHandler {
	return &LearnerHandler{authService: authService}
}

// Register godoc
// @Summary Register an anonymous learner
// @Description Mints a learner id and a bearer token for the score API
// @Tags learners
// @Produce json
// @Success 201 {object} dto.LearnerTokenResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /learners [post]
func (h *LearnerHandler) Register(c *fiber.Ctx) error {
	resp, err := h.authService.RegisterLearner(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
