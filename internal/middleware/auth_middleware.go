package middleware

import (
	"strings"

	"med-estudia/internal/domain"
	"med-estudia/internal/logger"
	"med-estudia/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	LearnerIDKey        = "learnerID" // Key for storing the learner id in fiber.Ctx locals
)

// RequireLearner rejects requests without a valid learner bearer token and
// stores the learner id in the context.
func RequireLearner(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return domain.NewUnauthorizedError("Authorization header is missing", nil)
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			return domain.NewUnauthorizedError("Authorization scheme is not Bearer", nil)
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return domain.NewUnauthorizedError("Token is empty", nil)
		}

		claims, err := authService.ValidateJWT(c.UserContext(), tokenString)
		if err != nil {
			logger.Get().Debug("Learner token rejected", zap.Error(err))
			return domain.NewUnauthorizedError("Invalid or expired token", err)
		}

		c.Locals(LearnerIDKey, claims.LearnerID)
		return c.Next()
	}
}

// LearnerID returns the id stored by RequireLearner, or "" outside it.
func LearnerID(c *fiber.Ctx) string {
	id, _ := c.Locals(LearnerIDKey).(string)
	return id
}
