package service

import (
	"context"

	"med-estudia/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockChatGateway ---
type MockChatGateway struct {
	mock.Mock
}

func (m *MockChatGateway) Complete(ctx context.Context, systemPrompt, userPrompt string) (*domain.ProviderResponse, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProviderResponse), args.Error(1)
}

// --- MockScoreRepository ---
type MockScoreRepository struct {
	mock.Mock
}

func (m *MockScoreRepository) AddQuizResult(ctx context.Context, learnerID string, result *domain.QuizResult) error {
	args := m.Called(ctx, learnerID, result)
	return args.Error(0)
}

func (m *MockScoreRepository) ListQuizResults(ctx context.Context, learnerID string) ([]domain.QuizResult, error) {
	args := m.Called(ctx, learnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizResult), args.Error(1)
}

func (m *MockScoreRepository) SaveQuestion(ctx context.Context, learnerID string, question *domain.SavedQuestion) error {
	args := m.Called(ctx, learnerID, question)
	return args.Error(0)
}

func (m *MockScoreRepository) ListSavedQuestions(ctx context.Context, learnerID string) ([]domain.SavedQuestion, error) {
	args := m.Called(ctx, learnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedQuestion), args.Error(1)
}

func (m *MockScoreRepository) DeleteSavedQuestion(ctx context.Context, learnerID, id string) error {
	args := m.Called(ctx, learnerID, id)
	return args.Error(0)
}

func (m *MockScoreRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func completion(content string) *domain.ProviderResponse {
	return &domain.ProviderResponse{
		ID:      "chatcmpl-test",
		Choices: []domain.ProviderChoice{{Content: content, FinishReason: "stop"}},
	}
}
