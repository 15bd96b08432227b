package handler

import (
	"context"
	"time"

	"med-estudia/internal/domain"
	"med-estudia/internal/dto"
	"med-estudia/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger is satisfied by every domain.ScoreRepository.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store   Pinger
	storage string
}

// NewHealthHandler takes a nil store when learner storage is disabled.
func NewHealthHandler(store Pinger, storage string) *HealthHandler {
	return &HealthHandler{store: store, storage: storage}
}

// Healthz godoc
// @Summary Liveness and storage check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /healthz [get]
func (h *HealthHandler) Healthz(c *fiber.Ctx) error {
	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.store.Ping(ctx); err != nil {
			logger.Get().Error("Health check failed", zap.String("storage", h.storage), zap.Error(err))
			return domain.NewInternalError("storage unavailable", err)
		}
	}
	return c.JSON(dto.HealthResponse{Status: "ok", Storage: h.storage})
}
