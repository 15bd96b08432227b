package handler

import (
	"med-estudia/internal/domain"
	"med-estudia/internal/dto"
	"med-estudia/internal/middleware"
	"med-estudia/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ScoreHandler serves a learner's quiz history and saved questions.
// Every route runs behind middleware.RequireLearner.
type ScoreHandler struct {
	service service.ScoreService
}

func NewScoreHandler(service service.ScoreService) *ScoreHandler {
	return &ScoreHandler{service: service}
}

// GetScores godoc
// @Summary Get quiz results and saved questions
// @Description Returns both lists, newest first
// @Tags scores
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} domain.ScoreSnapshot
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /scores [get]
func (h *ScoreHandler) GetScores(c *fiber.Ctx) error {
	snapshot, err := h.service.GetSnapshot(c.UserContext(), middleware.LearnerID(c))
	if err != nil {
		return err
	}
	return c.JSON(snapshot)
}

// GetStats godoc
// @Summary Get quiz statistics
// @Tags scores
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} domain.ScoreStats
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /scores/stats [get]
func (h *ScoreHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(c.UserContext(), middleware.LearnerID(c))
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// AddQuizResult godoc
// @Summary Record a finished quiz
// @Description The server assigns id and date
// @Tags scores
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.QuizResultRequest true "Quiz result"
// @Success 201 {object} domain.QuizResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /scores/quiz-results [post]
func (h *ScoreHandler) AddQuizResult(c *fiber.Ctx) error {
	var req dto.QuizResultRequest
	if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	result, err := h.service.AddQuizResult(c.UserContext(), middleware.LearnerID(c), req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// SaveQuestion godoc
// @Summary Save a question for later review
// @Tags scores
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.SavedQuestionRequest true "Question"
// @Success 201 {object} domain.SavedQuestion
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /scores/saved-questions [post]
func (h *ScoreHandler) SaveQuestion(c *fiber.Ctx) error {
	var req dto.SavedQuestionRequest
	if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	question, err := h.service.SaveQuestion(c.UserContext(), middleware.LearnerID(c), req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(question)
}

// DeleteSavedQuestion godoc
// @Summary Delete a saved question
// @Description Deleting an id that is not stored succeeds
// @Tags scores
// @Security ApiKeyAuth
// @Param id path string true "Question id"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /scores/saved-questions/{id} [delete]
func (h *ScoreHandler) DeleteSavedQuestion(c *fiber.Ctx) error {
	if err := h.service.DeleteSavedQuestion(c.UserContext(), middleware.LearnerID(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
