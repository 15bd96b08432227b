package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"med-estudia/internal/domain"
	"med-estudia/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testLearner = "01J0LEARNER0000000000000000"

var fixedNow = time.Date(2026, 10, 15, 8, 30, 0, 0, time.FixedZone("CST", -5*60*60))

func newTestScoreService(repo domain.ScoreRepository) *scoreService {
	return &scoreService{repo: repo, now: func() time.Time { return fixedNow }}
}

func TestScoreService_AddQuizResult(t *testing.T) {
	repo := new(MockScoreRepository)
	svc := newTestScoreService(repo)

	repo.On("AddQuizResult", mock.Anything, testLearner, mock.MatchedBy(func(r *domain.QuizResult) bool {
		return r.Topic == "Asma" && r.Date.Equal(fixedNow) && util.IsULID(r.ID)
	})).Return(nil).Once()

	in := &domain.QuizResult{ID: "client-id", Topic: "  Asma ", Score: 3, TotalQuestions: 5, Language: domain.LanguageES}
	out, err := svc.AddQuizResult(context.Background(), testLearner, in)

	require.NoError(t, err)
	assert.NotEqual(t, "client-id", out.ID)
	assert.True(t, util.IsULID(out.ID))
	assert.Equal(t, time.UTC, out.Date.Location())
	assert.True(t, out.Date.Equal(fixedNow))
	assert.Equal(t, "Asma", out.Topic)
	assert.Equal(t, "client-id", in.ID, "input is not mutated")
	repo.AssertExpectations(t)
}

func TestScoreService_AddQuizResult_Invalid(t *testing.T) {
	repo := new(MockScoreRepository)
	svc := newTestScoreService(repo)

	_, err := svc.AddQuizResult(context.Background(), testLearner, &domain.QuizResult{Topic: "x", Score: 6, TotalQuestions: 5, Language: domain.LanguageEN})
	assert.Equal(t, domain.CodeInvalidInput, domain.CodeOf(err))

	_, err = svc.AddQuizResult(context.Background(), testLearner, nil)
	assert.Equal(t, domain.CodeInvalidInput, domain.CodeOf(err))

	repo.AssertNotCalled(t, "AddQuizResult", mock.Anything, mock.Anything, mock.Anything)
}

func TestScoreService_AddQuizResult_RepoError(t *testing.T) {
	repo := new(MockScoreRepository)
	repo.On("AddQuizResult", mock.Anything, testLearner, mock.Anything).Return(errors.New("redis down"))

	_, err := newTestScoreService(repo).AddQuizResult(context.Background(), testLearner,
		&domain.QuizResult{Topic: "x", Score: 1, TotalQuestions: 1, Language: domain.LanguageEN})
	assert.Equal(t, domain.CodeInternal, domain.CodeOf(err))
}

func TestScoreService_SaveQuestion(t *testing.T) {
	repo := new(MockScoreRepository)
	repo.On("SaveQuestion", mock.Anything, testLearner, mock.AnythingOfType("*domain.SavedQuestion")).Return(nil)

	out, err := newTestScoreService(repo).SaveQuestion(context.Background(), testLearner, &domain.SavedQuestion{
		Question:      "Q",
		Options:       []string{"A) a", "B) b", "C) c", "D) d"},
		CorrectAnswer: "A",
		Topic:         "Sepsis",
		Difficulty:    "extreme",
		Language:      domain.LanguageEN,
	})

	require.NoError(t, err)
	assert.True(t, util.IsULID(out.ID))
	assert.Equal(t, "medium", out.Difficulty)
	assert.True(t, out.Date.Equal(fixedNow))
}

func TestScoreService_SaveQuestion_RequiresFourOptions(t *testing.T) {
	repo := new(MockScoreRepository)
	_, err := newTestScoreService(repo).SaveQuestion(context.Background(), testLearner, &domain.SavedQuestion{
		Question:      "Q",
		Options:       []string{"A) a", "B) b", "C) c"},
		CorrectAnswer: "A",
		Topic:         "Sepsis",
		Language:      domain.LanguageEN,
	})
	assert.Equal(t, domain.CodeInvalidInput, domain.CodeOf(err))
	repo.AssertNotCalled(t, "SaveQuestion", mock.Anything, mock.Anything, mock.Anything)
}

func TestScoreService_DeleteSavedQuestion(t *testing.T) {
	repo := new(MockScoreRepository)
	repo.On("DeleteSavedQuestion", mock.Anything, testLearner, "q1").Return(nil)
	svc := newTestScoreService(repo)

	assert.NoError(t, svc.DeleteSavedQuestion(context.Background(), testLearner, "q1"))
	assert.Equal(t, domain.CodeInvalidInput, domain.CodeOf(svc.DeleteSavedQuestion(context.Background(), testLearner, " ")))
	repo.AssertNumberOfCalls(t, "DeleteSavedQuestion", 1)
}

func TestScoreService_GetSnapshot(t *testing.T) {
	repo := new(MockScoreRepository)
	repo.On("ListQuizResults", mock.Anything, testLearner).Return([]domain.QuizResult{{ID: "r1"}}, nil)
	repo.On("ListSavedQuestions", mock.Anything, testLearner).Return(nil, nil)

	snapshot, err := newTestScoreService(repo).GetSnapshot(context.Background(), testLearner)
	require.NoError(t, err)
	assert.Len(t, snapshot.QuizResults, 1)
	assert.NotNil(t, snapshot.SavedQuestions)
	assert.Empty(t, snapshot.SavedQuestions)
}

func TestScoreService_GetSnapshot_Error(t *testing.T) {
	repo := new(MockScoreRepository)
	repo.On("ListQuizResults", mock.Anything, testLearner).Return([]domain.QuizResult{}, nil)
	repo.On("ListSavedQuestions", mock.Anything, testLearner).Return(nil, errors.New("ORA-12541"))

	_, err := newTestScoreService(repo).GetSnapshot(context.Background(), testLearner)
	assert.Equal(t, domain.CodeInternal, domain.CodeOf(err))
}

func TestScoreService_GetStats(t *testing.T) {
	repo := new(MockScoreRepository)
	repo.On("ListQuizResults", mock.Anything, testLearner).Return([]domain.QuizResult{
		{ID: "r2", Score: 5, TotalQuestions: 5},
		{ID: "r1", Score: 0, TotalQuestions: 5},
	}, nil)

	stats, err := newTestScoreService(repo).GetStats(context.Background(), testLearner)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalQuizzes)
	assert.Equal(t, 10, stats.TotalQuestions)
	assert.Equal(t, 50, stats.AverageScore)
	assert.Equal(t, "r2", stats.RecentQuizzes[0].ID)
}
