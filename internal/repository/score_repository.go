package repository

import (
	"context"
	"fmt"

	"med-estudia/internal/domain"
	"med-estudia/internal/repository/models"
	"med-estudia/internal/util"

	"github.com/jmoiron/sqlx"
)

const (
	insertQuizResultQuery = `INSERT INTO QUIZ_RESULTS (ID, LEARNER_ID, TOPIC, SCORE, TOTAL_QUESTIONS, LANGUAGE, CREATED_AT)
	          VALUES (:1, :2, :3, :4, :5, :6, :7)`

	pruneQuizResultsQuery = `DELETE FROM QUIZ_RESULTS WHERE LEARNER_ID = :1 AND ID NOT IN (
	          SELECT ID FROM QUIZ_RESULTS WHERE LEARNER_ID = :2
	          ORDER BY CREATED_AT DESC, ID DESC FETCH FIRST :3 ROWS ONLY)`

	listQuizResultsQuery = `SELECT ID, LEARNER_ID, TOPIC, SCORE, TOTAL_QUESTIONS, LANGUAGE, CREATED_AT
	          FROM QUIZ_RESULTS WHERE LEARNER_ID = :1
	          ORDER BY CREATED_AT DESC, ID DESC FETCH FIRST :2 ROWS ONLY`

	insertSavedQuestionQuery = `INSERT INTO SAVED_QUESTIONS (ID, LEARNER_ID, QUESTION, OPTIONS, CORRECT_ANSWER, EXPLANATION, TOPIC, DIFFICULTY, LANGUAGE, CREATED_AT)
	          VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9, :10)`

	pruneSavedQuestionsQuery = `DELETE FROM SAVED_QUESTIONS WHERE LEARNER_ID = :1 AND ID NOT IN (
	          SELECT ID FROM SAVED_QUESTIONS WHERE LEARNER_ID = :2
	          ORDER BY CREATED_AT DESC, ID DESC FETCH FIRST :3 ROWS ONLY)`

	listSavedQuestionsQuery = `SELECT ID, LEARNER_ID, QUESTION, OPTIONS, CORRECT_ANSWER, EXPLANATION, TOPIC, DIFFICULTY, LANGUAGE, CREATED_AT
	          FROM SAVED_QUESTIONS WHERE LEARNER_ID = :1
	          ORDER BY CREATED_AT DESC, ID DESC FETCH FIRST :2 ROWS ONLY`

	deleteSavedQuestionQuery = `DELETE FROM SAVED_QUESTIONS WHERE LEARNER_ID = :1 AND ID = :2`
)

// sqlxScoreRepository implements domain.ScoreRepository on Oracle via sqlx.
type sqlxScoreRepository struct {
	db *sqlx.DB
	tm TransactionManager
}

func NewSQLXScoreRepository(db *sqlx.DB, tm TransactionManager) domain.ScoreRepository {
	return &sqlxScoreRepository{db: db, tm: tm}
}

func toDomainQuizResult(m *models.QuizResult) domain.QuizResult {
	return domain.QuizResult{
		ID:             m.ID,
		Topic:          m.Topic,
		Score:          m.Score,
		TotalQuestions: m.TotalQuestions,
		Date:           m.CreatedAt.UTC(),
		Language:       domain.Language(m.Language),
	}
}

func toDomainSavedQuestion(m *models.SavedQuestion) domain.SavedQuestion {
	options := []string(m.Options)
	if options == nil {
		options = []string{}
	}
	return domain.SavedQuestion{
		ID:            m.ID,
		Question:      m.Question,
		Options:       options,
		CorrectAnswer: m.CorrectAnswer,
		Explanation:   util.NullStringToString(m.Explanation),
		Topic:         m.Topic,
		Difficulty:    util.NullStringToString(m.Difficulty),
		Date:          m.CreatedAt.UTC(),
		Language:      domain.Language(m.Language),
	}
}

// AddQuizResult inserts result and prunes the learner's history to the newest
// domain.MaxQuizResults rows in one transaction.
func (r *sqlxScoreRepository) AddQuizResult(ctx context.Context, learnerID string, result *domain.QuizResult) error {
	return r.tm.WithTransaction(ctx, func(txCtx context.Context) error {
		exec := GetExecutor(txCtx, r.db)

		if _, err := exec.ExecContext(txCtx, insertQuizResultQuery,
			result.ID,
			learnerID,
			result.Topic,
			result.Score,
			result.TotalQuestions,
			string(result.Language),
			result.Date,
		); err != nil {
			return fmt.Errorf("failed to insert quiz result: %w", err)
		}

		if _, err := exec.ExecContext(txCtx, pruneQuizResultsQuery, learnerID, learnerID, domain.MaxQuizResults); err != nil {
			return fmt.Errorf("failed to prune quiz results: %w", err)
		}
		return nil
	})
}

func (r *sqlxScoreRepository) ListQuizResults(ctx context.Context, learnerID string) ([]domain.QuizResult, error) {
	var rows []models.QuizResult
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, listQuizResultsQuery, learnerID, domain.MaxQuizResults); err != nil {
		return nil, fmt.Errorf("failed to list quiz results: %w", err)
	}

	results := make([]domain.QuizResult, 0, len(rows))
	for i := range rows {
		results = append(results, toDomainQuizResult(&rows[i]))
	}
	return results, nil
}

// SaveQuestion inserts question and prunes to the newest
// domain.MaxSavedQuestions rows in one transaction.
func (r *sqlxScoreRepository) SaveQuestion(ctx context.Context, learnerID string, question *domain.SavedQuestion) error {
	return r.tm.WithTransaction(ctx, func(txCtx context.Context) error {
		exec := GetExecutor(txCtx, r.db)

		if _, err := exec.ExecContext(txCtx, insertSavedQuestionQuery,
			question.ID,
			learnerID,
			question.Question,
			models.StringSlice(question.Options),
			question.CorrectAnswer,
			util.StringToNullString(question.Explanation),
			question.Topic,
			util.StringToNullString(question.Difficulty),
			string(question.Language),
			question.Date,
		); err != nil {
			return fmt.Errorf("failed to insert saved question: %w", err)
		}

		if _, err := exec.ExecContext(txCtx, pruneSavedQuestionsQuery, learnerID, learnerID, domain.MaxSavedQuestions); err != nil {
			return fmt.Errorf("failed to prune saved questions: %w", err)
		}
		return nil
	})
}

func (r *sqlxScoreRepository) ListSavedQuestions(ctx context.Context, learnerID string) ([]domain.SavedQuestion, error) {
	var rows []models.SavedQuestion
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, listSavedQuestionsQuery, learnerID, domain.MaxSavedQuestions); err != nil {
		return nil, fmt.Errorf("failed to list saved questions: %w", err)
	}

	questions := make([]domain.SavedQuestion, 0, len(rows))
	for i := range rows {
		questions = append(questions, toDomainSavedQuestion(&rows[i]))
	}
	return questions, nil
}

func (r *sqlxScoreRepository) DeleteSavedQuestion(ctx context.Context, learnerID, id string) error {
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, deleteSavedQuestionQuery, learnerID, id); err != nil {
		return fmt.Errorf("failed to delete saved question: %w", err)
	}
	return nil
}

func (r *sqlxScoreRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
