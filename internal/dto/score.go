package dto

import (
	"time"

	"med-estudia/internal/domain"
)

// QuizResultRequest is the body of POST /api/scores/quiz-results.
// Any id or date sent by the client is ignored.
type QuizResultRequest struct {
	Topic          string `json:"topic" example:"Asma bronquial"`
	Score          int    `json:"score" example:"4"`
	TotalQuestions int    `json:"totalQuestions" example:"5"`
	Language       string `json:"language" example:"es"`
}

func (r QuizResultRequest) ToDomain() *domain.QuizResult {
	return &domain.QuizResult{
		Topic:          r.Topic,
		Score:          r.Score,
		TotalQuestions: r.TotalQuestions,
		Language:       domain.Language(r.Language),
	}
}

// SavedQuestionRequest is the body of POST /api/scores/saved-questions.
type SavedQuestionRequest struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer" example:"B"`
	Explanation   string   `json:"explanation"`
	Topic         string   `json:"topic" example:"Malaria"`
	Difficulty    string   `json:"difficulty" example:"hard"`
	Language      string   `json:"language" example:"en"`
}

func (r SavedQuestionRequest) ToDomain() *domain.SavedQuestion {
	return &domain.SavedQuestion{
		Question:      r.Question,
		Options:       r.Options,
		CorrectAnswer: r.CorrectAnswer,
		Explanation:   r.Explanation,
		Topic:         r.Topic,
		Difficulty:    r.Difficulty,
		Language:      domain.Language(r.Language),
	}
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Storage string `json:"storage,omitempty" example:"redis"`
}

// LearnerTokenResponse is returned when a learner is registered.
// @Description Anonymous learner identity and bearer token
type LearnerTokenResponse struct {
	LearnerID string    `json:"learnerId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
