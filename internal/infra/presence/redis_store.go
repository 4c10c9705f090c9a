package presence

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"heyfarmer/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// redisStore keeps one sorted set per conversation. Members are user ids
// scored by their expiry in unix milliseconds.
type redisStore struct {
	client redis.Cmdable
	now    func() time.Time
}

// NewRedisStore builds a TypingStore on a Redis client.
func NewRedisStore(client redis.Cmdable) service.TypingStore {
	return &redisStore{client: client, now: time.Now}
}

func typingKey(conversationID uuid.UUID) string {
	return fmt.Sprintf("typing:conv:%s", conversationID)
}

func (s *redisStore) SetTyping(ctx context.Context, conversationID, userID uuid.UUID, ttl time.Duration) error {
	key := typingKey(conversationID)
	expiresAt := s.now().Add(ttl).UnixMilli()

	pipe := s.client.TxPipeline()
	pipe.ZAdd(ctx, key, &redis.Z{Score: float64(expiresAt), Member: userID.String()})
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to set typing indicator")
	}

	return nil
}

func (s *redisStore) ListTyping(ctx context.Context, conversationID uuid.UUID) ([]uuid.UUID, error) {
	key := typingKey(conversationID)
	now := strconv.FormatInt(s.now().UnixMilli(), 10)

	if err := s.client.ZRemRangeByScore(ctx, key, "-inf", now).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to prune typing indicators")
	}

	members, err := s.client.ZRangeByScore(ctx, key, &redis.ZRangeBy{Min: "(" + now, Max: "+inf"}).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list typing indicators")
	}

	users := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			continue
		}
		users = append(users, id)
	}

	return users, nil
}
