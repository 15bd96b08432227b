package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"med-estudia/internal/cache"
	"med-estudia/internal/domain"
	"med-estudia/internal/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisScoreStore implements domain.ScoreRepository with one Redis list per
// learner and kind. Entries are JSON, newest at the head.
type RedisScoreStore struct {
	client redis.UniversalClient
}

// NewRedisScoreStore expects a connected client.
func NewRedisScoreStore(client redis.UniversalClient) domain.ScoreRepository {
	return &RedisScoreStore{client: client}
}

func (r *RedisScoreStore) AddQuizResult(ctx context.Context, learnerID string, result *domain.QuizResult) error {
	return r.pushCapped(ctx, cache.QuizResultsKey(learnerID), result, domain.MaxQuizResults)
}

func (r *RedisScoreStore) ListQuizResults(ctx context.Context, learnerID string) ([]domain.QuizResult, error) {
	return listEntries[domain.QuizResult](ctx, r.client, cache.QuizResultsKey(learnerID))
}

func (r *RedisScoreStore) SaveQuestion(ctx context.Context, learnerID string, question *domain.SavedQuestion) error {
	return r.pushCapped(ctx, cache.SavedQuestionsKey(learnerID), question, domain.MaxSavedQuestions)
}

func (r *RedisScoreStore) ListSavedQuestions(ctx context.Context, learnerID string) ([]domain.SavedQuestion, error) {
	return listEntries[domain.SavedQuestion](ctx, r.client, cache.SavedQuestionsKey(learnerID))
}

// deleteByIDScript removes the first list entry whose JSON id equals ARGV[1]
// and returns the number of removed entries.
var deleteByIDScript = redis.NewScript(`
local entries = redis.call('LRANGE', KEYS[1], 0, -1)
for _, entry in ipairs(entries) do
	local ok, decoded = pcall(cjson.decode, entry)
	if ok and type(decoded) == 'table' and decoded.id == ARGV[1] then
		return redis.call('LREM', KEYS[1], 1, entry)
	end
end
return 0
`)

// DeleteSavedQuestion removes the entry whose id matches in one server-side
// script. A missing id is not an error.
func (r *RedisScoreStore) DeleteSavedQuestion(ctx context.Context, learnerID, id string) error {
	key := cache.SavedQuestionsKey(learnerID)
	removed, err := deleteByIDScript.Run(ctx, r.client, []string{key}, id).Int64()
	if err != nil {
		return fmt.Errorf("delete %s from %s: %w", id, key, err)
	}
	if removed == 0 {
		logger.Get().Debug("Saved question not found", zap.String("key", key), zap.String("question_id", id))
	}
	return nil
}

func (r *RedisScoreStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// pushCapped prepends v and trims the list to limit entries in one MULTI.
func (r *RedisScoreStore) pushCapped(ctx context.Context, key string, v any, limit int64) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal entry for %s: %w", key, err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, string(payload))
	pipe.LTrim(ctx, key, 0, limit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push to %s: %w", key, err)
	}
	return nil
}

func listEntries[T any](ctx context.Context, client redis.UniversalClient, key string) ([]T, error) {
	raw, err := client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return []T{}, nil
		}
		return nil, fmt.Errorf("lrange %s: %w", key, err)
	}

	out := make([]T, 0, len(raw))
	for i, entry := range raw {
		var v T
		if err := json.Unmarshal([]byte(entry), &v); err != nil {
			logger.Get().Warn("Skipping corrupt score entry",
				zap.String("key", key),
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		out = append(out, v)
	}
	return out, nil
}
