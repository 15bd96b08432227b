package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"med-estudia/internal/config"
	"med-estudia/internal/domain"
	"med-estudia/internal/dto"
	"med-estudia/internal/logger"
	"med-estudia/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const tokenTypeLearner = "learner"

var ErrInvalidJWTToken = errors.New("invalid jwt token")

// AuthService issues and checks anonymous learner tokens.
type AuthService interface {
	RegisterLearner(ctx context.Context) (*dto.LearnerTokenResponse, error)
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

type authServiceImpl struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthService requires a secret of at least 32 bytes.
func NewAuthService(jwtCfg config.JWTConfig) (AuthService, error) {
	if len(jwtCfg.SecretKey) < 32 {
		return nil, errors.New("jwt secret key must be at least 32 bytes long")
	}
	ttl := jwtCfg.LearnerTokenTTL
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &authServiceImpl{
		secret: []byte(jwtCfg.SecretKey),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// RegisterLearner mints a new learner id and a token for it.
func (s *authServiceImpl) RegisterLearner(ctx context.Context) (*dto.LearnerTokenResponse, error) {
	learnerID := util.NewULID()
	token, expiresAt, err := s.createJWT(learnerID)
	if err != nil {
		logger.Get().Error("Failed to sign learner token", zap.Error(err))
		return nil, domain.NewInternalError("Failed to create learner token", err)
	}

	logger.Get().Info("Registered learner", zap.String("learner_id", learnerID))
	return &dto.LearnerTokenResponse{
		LearnerID: learnerID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *authServiceImpl) createJWT(learnerID string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := dto.AuthClaims{
		LearnerID: learnerID,
		TokenType: tokenTypeLearner,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   learnerID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	return signed, expiresAt.UTC(), err
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	appLogger := logger.Get()
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			appLogger.Warn("JWT token expired", zap.Error(err))
		} else {
			appLogger.Warn("JWT validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidJWTToken
	}
	if claims.TokenType != tokenTypeLearner || claims.Subject == "" || claims.Subject != claims.LearnerID {
		appLogger.Warn("JWT has unexpected claims", zap.String("token_type", claims.TokenType))
		return nil, ErrInvalidJWTToken
	}
	return claims, nil
}
