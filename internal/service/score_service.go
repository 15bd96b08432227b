package service

import (
	"context"
	"strings"
	"time"

	"med-estudia/internal/domain"
	"med-estudia/internal/logger"
	"med-estudia/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ScoreService manages a learner's quiz history and saved questions.
type ScoreService interface {
	AddQuizResult(ctx context.Context, learnerID string, result *domain.QuizResult) (*domain.QuizResult, error)
	SaveQuestion(ctx context.Context, learnerID string, question *domain.SavedQuestion) (*domain.SavedQuestion, error)
	DeleteSavedQuestion(ctx context.Context, learnerID, id string) error
	GetSnapshot(ctx context.Context, learnerID string) (*domain.ScoreSnapshot, error)
	GetStats(ctx context.Context, learnerID string) (*domain.ScoreStats, error)
}

type scoreService struct {
	repo domain.ScoreRepository
	now  func() time.Time
}

func NewScoreService(repo domain.ScoreRepository) ScoreService {
	return &scoreService{repo: repo, now: time.Now}
}

// AddQuizResult validates result, stamps a fresh ID and UTC date over
// whatever the caller sent, and stores it.
func (s *scoreService) AddQuizResult(ctx context.Context, learnerID string, result *domain.QuizResult) (*domain.QuizResult, error) {
	if result == nil {
		return nil, domain.NewInvalidInputError("quiz result is required")
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}

	stamped := *result
	stamped.Topic = strings.TrimSpace(stamped.Topic)
	stamped.Date = s.now().UTC()
	stamped.ID = util.NewULIDAt(stamped.Date)

	if err := s.repo.AddQuizResult(ctx, learnerID, &stamped); err != nil {
		logger.Get().Error("Failed to store quiz result", zap.String("learner_id", learnerID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to store quiz result", err)
	}
	return &stamped, nil
}

func (s *scoreService) SaveQuestion(ctx context.Context, learnerID string, question *domain.SavedQuestion) (*domain.SavedQuestion, error) {
	if question == nil {
		return nil, domain.NewInvalidInputError("question is required")
	}
	if err := question.Validate(); err != nil {
		return nil, err
	}

	stamped := *question
	stamped.Options = append([]string(nil), question.Options...)
	stamped.Topic = strings.TrimSpace(stamped.Topic)
	stamped.Difficulty = string(domain.ParseDifficulty(stamped.Difficulty))
	stamped.Date = s.now().UTC()
	stamped.ID = util.NewULIDAt(stamped.Date)

	if err := s.repo.SaveQuestion(ctx, learnerID, &stamped); err != nil {
		logger.Get().Error("Failed to save question", zap.String("learner_id", learnerID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to save question", err)
	}
	return &stamped, nil
}

func (s *scoreService) DeleteSavedQuestion(ctx context.Context, learnerID, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.NewInvalidInputError("question id is required")
	}
	if err := s.repo.DeleteSavedQuestion(ctx, learnerID, id); err != nil {
		logger.Get().Error("Failed to delete saved question",
			zap.String("learner_id", learnerID),
			zap.String("question_id", id),
			zap.Error(err))
		return domain.NewInternalError("Failed to delete saved question", err)
	}
	return nil
}

// GetSnapshot loads both lists concurrently.
func (s *scoreService) GetSnapshot(ctx context.Context, learnerID string) (*domain.ScoreSnapshot, error) {
	snapshot := &domain.ScoreSnapshot{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		results, err := s.repo.ListQuizResults(gctx, learnerID)
		if err != nil {
			return err
		}
		snapshot.QuizResults = results
		return nil
	})
	g.Go(func() error {
		questions, err := s.repo.ListSavedQuestions(gctx, learnerID)
		if err != nil {
			return err
		}
		snapshot.SavedQuestions = questions
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Get().Error("Failed to load scores", zap.String("learner_id", learnerID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to load scores", err)
	}

	if snapshot.QuizResults == nil {
		snapshot.QuizResults = []domain.QuizResult{}
	}
	if snapshot.SavedQuestions == nil {
		snapshot.SavedQuestions = []domain.SavedQuestion{}
	}
	return snapshot, nil
}

func (s *scoreService) GetStats(ctx context.Context, learnerID string) (*domain.ScoreStats, error) {
	results, err := s.repo.ListQuizResults(ctx, learnerID)
	if err != nil {
		logger.Get().Error("Failed to load quiz results", zap.String("learner_id", learnerID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to load quiz results", err)
	}
	stats := domain.ComputeStats(results)
	return &stats, nil
}
