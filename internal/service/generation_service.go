package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"med-estudia/internal/domain"
	"med-estudia/internal/logger"
	"med-estudia/internal/prompt"
	"med-estudia/internal/shape"

	"go.uber.org/zap"
)

// GenerationService runs one request through prompt building, the gateway
// call, normalization and shape validation, in that order.
type GenerationService interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (domain.Result, error)
}

type generationService struct {
	prompts   *prompt.Builder
	gateway   domain.ChatGateway
	validator *shape.Validator
}

func NewGenerationService(prompts *prompt.Builder, gateway domain.ChatGateway, validator *shape.Validator) GenerationService {
	return &generationService{
		prompts:   prompts,
		gateway:   gateway,
		validator: validator,
	}
}

// Generate returns a domain.MCQItem, domain.Quiz or domain.ExplanationRecord.
// Every failure is a *domain.DomainError.
func (s *generationService) Generate(ctx context.Context, req domain.GenerationRequest) (domain.Result, error) {
	l := logger.Get()
	start := time.Now()

	topic, language, err := describe(req)
	if err != nil {
		l.Warn("Rejected generation request", zap.String("type", fmt.Sprintf("%T", req)))
		return nil, err
	}
	l = l.With(
		zap.String("mode", string(req.Mode())),
		zap.String("topic", topic),
		zap.String("language", string(language)),
	)

	pair, err := s.prompts.Build(req)
	if err != nil {
		l.Error("Failed to build prompt", zap.Error(err))
		return nil, err
	}
	l.Debug("Prompt built", zap.Int("user_prompt_len", len(pair.User)))

	resp, err := s.gateway.Complete(ctx, pair.System, pair.User)
	if err != nil {
		return nil, asDomainError(err)
	}

	content, ok := resp.FirstContent()
	if !ok {
		l.Error("AI response had no content", zap.String("response_id", resp.ID))
		return nil, domain.NewError(domain.CodeShapeValidation, domain.MsgNoContent, nil)
	}

	candidate := shape.Normalize(content)
	l.Debug("AI response normalized", zap.Int("raw_len", len(content)), zap.Int("candidate_len", len(candidate)))

	result, err := s.validator.Validate(candidate, req.Mode())
	if err != nil {
		var shapeErr *shape.ShapeError
		if errors.As(err, &shapeErr) {
			l.Error("AI response failed shape validation",
				zap.String("kind", string(shapeErr.Kind)),
				zap.String("field", shapeErr.Field),
				zap.String("raw_content", content),
				zap.Error(shapeErr.Err))
			return nil, domain.NewShapeValidationError(shapeErr)
		}
		return nil, asDomainError(err)
	}

	l.Info("Generated content", zap.Duration("elapsed", time.Since(start)))
	return result, nil
}

func describe(req domain.GenerationRequest) (string, domain.Language, error) {
	switch r := req.(type) {
	case domain.MCQRequest:
		return r.Topic, r.Language, nil
	case domain.QuizRequest:
		return r.Topic, r.Language, nil
	case domain.ExplainRequest:
		return r.Topic, r.Language, nil
	default:
		return "", "", domain.NewInvalidRequestTypeError(fmt.Sprintf("%T", req))
	}
}

func asDomainError(err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return domain.NewInternalError(domain.MsgUnexpected, err)
}
