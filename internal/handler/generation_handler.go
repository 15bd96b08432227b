package handler

import (
	"med-estudia/internal/domain"
	"med-estudia/internal/dto"
	"med-estudia/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GenerationHandler serves the medical content generation endpoint.
type GenerationHandler struct {
	service service.GenerationService
}

func NewGenerationHandler(service service.GenerationService) *GenerationHandler {
	return &GenerationHandler{service: service}
}

// Generate godoc
// @Summary Generate medical study content
// @Description Generates a multiple-choice question, a quiz or a structured explanation for a medical topic
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "Generation request"
// @Success 200 {object} dto.DataResponse
// @Failure 402 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /medical-ai [post]
func (h *GenerationHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
		return domain.NewInternalError("Invalid request body", err)
	}

	genReq, err := req.ToDomain()
	if err != nil {
		return err
	}

	result, err := h.service.Generate(c.UserContext(), genReq)
	if err != nil {
		return err
	}
	return c.JSON(dto.DataResponse{Data: result})
}
