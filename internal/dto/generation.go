package dto

import (
	"strings"

	"med-estudia/internal/domain"
)

// GenerateRequest is the body of POST /api/medical-ai.
// @Description Generation request; type selects mcq, quiz or explain
type GenerateRequest struct {
	Type       string `json:"type" example:"mcq"`
	Topic      string `json:"topic" example:"Dengue"`
	Difficulty string `json:"difficulty,omitempty" example:"medium"`
	Language   string `json:"language" example:"es"`
	Count      *int   `json:"count,omitempty" example:"5"`
}

// ToDomain maps the wire body onto a domain request variant.
func (r GenerateRequest) ToDomain() (domain.GenerationRequest, error) {
	language := domain.ParseLanguage(r.Language)
	switch domain.Mode(strings.TrimSpace(r.Type)) {
	case domain.ModeMCQ:
		return domain.MCQRequest{
			Topic:      r.Topic,
			Difficulty: domain.ParseDifficulty(r.Difficulty),
			Language:   language,
		}, nil
	case domain.ModeQuiz:
		req := domain.QuizRequest{Topic: r.Topic, Language: language}
		if r.Count != nil {
			req.Count = *r.Count
		}
		return req, nil
	case domain.ModeExplain:
		return domain.ExplainRequest{Topic: r.Topic, Language: language}, nil
	default:
		return nil, domain.NewInvalidRequestTypeError(r.Type)
	}
}

// DataResponse wraps a successful payload.
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorResponse carries a user-facing message only.
type ErrorResponse struct {
	Error string `json:"error" example:"Rate limit exceeded. Please try again later."`
}
