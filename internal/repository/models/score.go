package models

import (
	"database/sql"
	"time"
)

// QuizResult is a row of QUIZ_RESULTS.
type QuizResult struct {
	ID             string    `db:"ID"`
	LearnerID      string    `db:"LEARNER_ID"`
	Topic          string    `db:"TOPIC"`
	Score          int       `db:"SCORE"`
	TotalQuestions int       `db:"TOTAL_QUESTIONS"`
	Language       string    `db:"LANGUAGE"`
	CreatedAt      time.Time `db:"CREATED_AT"`
}

// SavedQuestion is a row of SAVED_QUESTIONS. Oracle stores '' as NULL, so
// optional text columns are nullable.
type SavedQuestion struct {
	ID            string         `db:"ID"`
	LearnerID     string         `db:"LEARNER_ID"`
	Question      string         `db:"QUESTION"`
	Options       StringSlice    `db:"OPTIONS"`
	CorrectAnswer string         `db:"CORRECT_ANSWER"`
	Explanation   sql.NullString `db:"EXPLANATION"`
	Topic         string         `db:"TOPIC"`
	Difficulty    sql.NullString `db:"DIFFICULTY"`
	Language      string         `db:"LANGUAGE"`
	CreatedAt     time.Time      `db:"CREATED_AT"`
}
