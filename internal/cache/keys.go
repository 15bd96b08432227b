package cache

import "strings"

const (
	GlobalKeyPrefix = "medestudia"

	scoreService      = "scores"
	quizResultsType   = "quiz_results"
	savedQuestionType = "saved_questions"
)

// GenerateCacheKey generates a key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// QuizResultsKey is the list holding a learner's quiz results, newest first.
func QuizResultsKey(learnerID string) string {
	return GenerateCacheKey(scoreService, quizResultsType, learnerID)
}

// SavedQuestionsKey is the list holding a learner's saved questions, newest first.
func SavedQuestionsKey(learnerID string) string {
	return GenerateCacheKey(scoreService, savedQuestionType, learnerID)
}
