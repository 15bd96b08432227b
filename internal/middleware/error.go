package middleware

import (
	"errors"
	"net/http"

	"med-estudia/internal/domain"
	"med-estudia/internal/dto"
	"med-estudia/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler is the app-wide fiber error handler. Every failure is written
// as {"error": message}; causes and raw upstream bodies only reach the log.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.String("path", c.Path()),
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{Error: fiberErr.Message})
		}

		status := StatusFor(err)
		fields := []zap.Field{
			zap.String("path", c.Path()),
			zap.String("code", string(domain.CodeOf(err))),
			zap.Int("status", status),
			zap.Error(err),
		}
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) && len(domainErr.Context) > 0 {
			fields = append(fields, zap.Any("details", domainErr.Context))
		}
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", fields...)
		} else {
			log.Warn("Request rejected", fields...)
		}

		return c.Status(status).JSON(dto.ErrorResponse{Error: domain.MessageOf(err)})
	}
}

// StatusFor maps an error onto the HTTP status the client sees. Gateway
// throttling and billing failures pass through; any other generation
// failure is a 500.
func StatusFor(err error) int {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	switch domain.CodeOf(err) {
	case domain.CodeGatewayRateLimited:
		return http.StatusTooManyRequests
	case domain.CodeGatewayPaymentRequired:
		return http.StatusPaymentRequired
	case domain.CodeInvalidInput:
		return http.StatusBadRequest
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	case domain.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
