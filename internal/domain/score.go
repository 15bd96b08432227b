package domain

import (
	"context"
	"math"
	"strings"
	"time"
)

// History caps, newest entries win.
const (
	MaxQuizResults    = 50
	MaxSavedQuestions = 100
	RecentQuizzes     = 5
)

// QuizResult records one finished quiz.
type QuizResult struct {
	ID             string    `json:"id"`
	Topic          string    `json:"topic"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Date           time.Time `json:"date"`
	Language       Language  `json:"language"`
}

// Validate validates a quiz result before it is stamped and stored.
func (r *QuizResult) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return NewInvalidInputError("topic is required")
	}
	if r.TotalQuestions < 1 {
		return NewInvalidInputError("totalQuestions must be at least 1")
	}
	if r.Score < 0 || r.Score > r.TotalQuestions {
		return NewInvalidInputError("score must be between 0 and totalQuestions")
	}
	if !r.Language.Valid() {
		return NewInvalidInputError("language must be es or en")
	}
	return nil
}

// SavedQuestion is an MCQ the learner bookmarked.
type SavedQuestion struct {
	ID            string    `json:"id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correctAnswer"`
	Explanation   string    `json:"explanation"`
	Topic         string    `json:"topic"`
	Difficulty    string    `json:"difficulty"`
	Date          time.Time `json:"date"`
	Language      Language  `json:"language"`
}

// Validate validates a saved question before it is stamped and stored.
func (q *SavedQuestion) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return NewInvalidInputError("question is required")
	}
	if len(q.Options) != 4 {
		return NewInvalidInputError("exactly 4 options are required")
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		return NewInvalidInputError("correctAnswer is required")
	}
	if strings.TrimSpace(q.Topic) == "" {
		return NewInvalidInputError("topic is required")
	}
	if !q.Language.Valid() {
		return NewInvalidInputError("language must be es or en")
	}
	return nil
}

// ScoreSnapshot is everything stored for one learner.
type ScoreSnapshot struct {
	QuizResults    []QuizResult    `json:"quizResults"`
	SavedQuestions []SavedQuestion `json:"savedQuestions"`
}

type ScoreStats struct {
	TotalQuizzes   int          `json:"totalQuizzes"`
	TotalQuestions int          `json:"totalQuestions"`
	AverageScore   int          `json:"averageScore"`
	RecentQuizzes  []QuizResult `json:"recentQuizzes"`
}

// ComputeStats summarizes results, which must be ordered newest first.
func ComputeStats(results []QuizResult) ScoreStats {
	stats := ScoreStats{RecentQuizzes: []QuizResult{}}
	if len(results) == 0 {
		return stats
	}

	totalCorrect := 0
	for _, r := range results {
		stats.TotalQuestions += r.TotalQuestions
		totalCorrect += r.Score
	}
	stats.TotalQuizzes = len(results)
	if stats.TotalQuestions > 0 {
		stats.AverageScore = int(math.Round(float64(totalCorrect) / float64(stats.TotalQuestions) * 100))
	}

	recent := min(RecentQuizzes, len(results))
	stats.RecentQuizzes = append(stats.RecentQuizzes, results[:recent]...)
	return stats
}

// ScoreRepository persists learner history. Implementations keep lists newest
// first and trim them to MaxQuizResults / MaxSavedQuestions on insert.
type ScoreRepository interface {
	AddQuizResult(ctx context.Context, learnerID string, result *QuizResult) error
	ListQuizResults(ctx context.Context, learnerID string) ([]QuizResult, error)
	SaveQuestion(ctx context.Context, learnerID string, question *SavedQuestion) error
	ListSavedQuestions(ctx context.Context, learnerID string) ([]SavedQuestion, error)
	// DeleteSavedQuestion is a no-op when id does not exist.
	DeleteSavedQuestion(ctx context.Context, learnerID, id string) error
	Ping(ctx context.Context) error
}
