package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"med-estudia/internal/config"
	"med-estudia/internal/domain"
	"med-estudia/internal/dto"
	"med-estudia/internal/handler"
	"med-estudia/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore keeps lists newest first, like the real stores.
type memoryStore struct {
	mu        sync.Mutex
	results   map[string][]domain.QuizResult
	questions map[string][]domain.SavedQuestion
	pingErr   error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		results:   map[string][]domain.QuizResult{},
		questions: map[string][]domain.SavedQuestion{},
	}
}

func (s *memoryStore) AddQuizResult(_ context.Context, learnerID string, r *domain.QuizResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[learnerID] = append([]domain.QuizResult{*r}, s.results[learnerID]...)
	return nil
}

func (s *memoryStore) ListQuizResults(_ context.Context, learnerID string) ([]domain.QuizResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.QuizResult(nil), s.results[learnerID]...), nil
}

func (s *memoryStore) SaveQuestion(_ context.Context, learnerID string, q *domain.SavedQuestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions[learnerID] = append([]domain.SavedQuestion{*q}, s.questions[learnerID]...)
	return nil
}

func (s *memoryStore) ListSavedQuestions(_ context.Context, learnerID string) ([]domain.SavedQuestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.SavedQuestion(nil), s.questions[learnerID]...), nil
}

func (s *memoryStore) DeleteSavedQuestion(_ context.Context, learnerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.questions[learnerID][:0]
	for _, q := range s.questions[learnerID] {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	s.questions[learnerID] = kept
	return nil
}

func (s *memoryStore) Ping(context.Context) error { return s.pingErr }

func newScoreApp(t *testing.T, store *memoryStore) *fiber.App {
	t.Helper()
	authSvc, err := service.NewAuthService(config.JWTConfig{
		SecretKey:       "handler-test-secret-key-0123456789abcdef",
		LearnerTokenTTL: time.Hour,
	})
	require.NoError(t, err)

	app := handler.NewApp(config.ServerConfig{BodyLimit: 1024 * 1024})
	handler.Routes{
		Generation: handler.NewGenerationHandler(nil),
		Health:     handler.NewHealthHandler(store, config.StorageDriverRedis),
		Learners:   handler.NewLearnerHandler(authSvc),
		Scores:     handler.NewScoreHandler(service.NewScoreService(store)),
		Auth:       authSvc,
	}.Register(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, token, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func registerLearner(t *testing.T, app *fiber.App) dto.LearnerTokenResponse {
	t.Helper()
	resp, raw := do(t, app, http.MethodPost, "/api/learners", "", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var learner dto.LearnerTokenResponse
	require.NoError(t, json.Unmarshal(raw, &learner))
	require.NotEmpty(t, learner.Token)
	return learner
}

func TestScores_Flow(t *testing.T) {
	app := newScoreApp(t, newMemoryStore())
	learner := registerLearner(t, app)

	resp, raw := do(t, app, http.MethodPost, "/api/scores/quiz-results", learner.Token,
		`{"id":"client","topic":"Asma","score":3,"totalQuestions":4,"language":"es"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	var stored domain.QuizResult
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.NotEqual(t, "client", stored.ID)

	resp, raw = do(t, app, http.MethodPost, "/api/scores/saved-questions", learner.Token,
		`{"question":"Q?","options":["A) a","B) b","C) c","D) d"],"correctAnswer":"B","explanation":"E","topic":"Malaria","difficulty":"hard","language":"en"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	var saved domain.SavedQuestion
	require.NoError(t, json.Unmarshal(raw, &saved))

	resp, raw = do(t, app, http.MethodGet, "/api/scores", learner.Token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var snapshot domain.ScoreSnapshot
	require.NoError(t, json.Unmarshal(raw, &snapshot))
	assert.Len(t, snapshot.QuizResults, 1)
	assert.Len(t, snapshot.SavedQuestions, 1)

	resp, raw = do(t, app, http.MethodGet, "/api/scores/stats", learner.Token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats domain.ScoreStats
	require.NoError(t, json.Unmarshal(raw, &stats))
	assert.Equal(t, 1, stats.TotalQuizzes)
	assert.Equal(t, 4, stats.TotalQuestions)
	assert.Equal(t, 75, stats.AverageScore)

	resp, _ = do(t, app, http.MethodDelete, "/api/scores/saved-questions/"+saved.ID, learner.Token, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Deleting again is still a success.
	resp, _ = do(t, app, http.MethodDelete, "/api/scores/saved-questions/"+saved.ID, learner.Token, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, raw = do(t, app, http.MethodGet, "/api/scores", learner.Token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `"savedQuestions":[]`)
}

func TestScores_LearnersAreIsolated(t *testing.T) {
	app := newScoreApp(t, newMemoryStore())
	alice := registerLearner(t, app)
	bob := registerLearner(t, app)

	resp, _ := do(t, app, http.MethodPost, "/api/scores/quiz-results", alice.Token,
		`{"topic":"Asma","score":1,"totalQuestions":1,"language":"en"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, raw := do(t, app, http.MethodGet, "/api/scores/stats", bob.Token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"totalQuizzes":0,"totalQuestions":0,"averageScore":0,"recentQuizzes":[]}`, string(raw))
}

func TestScores_Rejections(t *testing.T) {
	app := newScoreApp(t, newMemoryStore())
	learner := registerLearner(t, app)

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		body       string
		wantStatus int
	}{
		{"no token", http.MethodGet, "/api/scores", "", "", http.StatusUnauthorized},
		{"bad token", http.MethodGet, "/api/scores", "garbage", "", http.StatusUnauthorized},
		{"score above total", http.MethodPost, "/api/scores/quiz-results", learner.Token,
			`{"topic":"Asma","score":6,"totalQuestions":5,"language":"es"}`, http.StatusBadRequest},
		{"blank topic", http.MethodPost, "/api/scores/quiz-results", learner.Token,
			`{"topic":" ","score":1,"totalQuestions":5,"language":"es"}`, http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/api/scores/quiz-results", learner.Token, `{`, http.StatusBadRequest},
		{"three options", http.MethodPost, "/api/scores/saved-questions", learner.Token,
			`{"question":"Q","options":["a","b","c"],"correctAnswer":"A","topic":"T","language":"en"}`, http.StatusBadRequest},
		{"bad id", http.MethodDelete, "/api/scores/saved-questions/nope", learner.Token, "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, raw := do(t, app, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode, string(raw))

			var out dto.ErrorResponse
			require.NoError(t, json.Unmarshal(raw, &out))
			assert.NotEmpty(t, out.Error)
		})
	}
}

func TestScores_DisabledWithoutStorage(t *testing.T) {
	app := handler.NewApp(config.ServerConfig{BodyLimit: 1024 * 1024})
	handler.Routes{Generation: handler.NewGenerationHandler(nil)}.Register(app)

	resp, _ := do(t, app, http.MethodGet, "/api/scores", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	store := newMemoryStore()
	app := newScoreApp(t, store)

	resp, raw := do(t, app, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","storage":"redis"}`, string(raw))

	store.pingErr = errors.New("connection refused")
	resp, _ = do(t, app, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
