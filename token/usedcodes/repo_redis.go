package usedcodes

import (
	"context"
	"errors"
	"time"

	autherrors "github.com/jrsteele09/go-stateless-auth-server/internal/errors"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "oauth:used-code:"

// RedisRepo tracks redeemed codes in Redis so several server replicas share
// one view of which codes have been spent.
type RedisRepo struct {
	client  redis.UniversalClient
	nowFunc func() time.Time
}

var _ Repo = (*RedisRepo)(nil)

// NewRedisRepo connects to addr and verifies the connection with a PING
func NewRedisRepo(ctx context.Context, addr string) (*RedisRepo, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, autherrors.Wrapf(err, "redis connection to %s failed", addr)
	}

	return NewRedisRepoWithClient(client), nil
}

func NewRedisRepoWithClient(client redis.UniversalClient) *RedisRepo {
	return &RedisRepo{
		client:  client,
		nowFunc: time.Now,
	}
}

func (r *RedisRepo) MarkUsed(ctx context.Context, id string, expiresAt time.Time) (bool, error) {
	if id == "" {
		return false, errors.New("id cannot be empty")
	}

	// Redis rejects TTLs under a millisecond; a code that close to expiry is
	// held for a second, which is still past its exp.
	ttl := expiresAt.Sub(r.nowFunc())
	if ttl < time.Second {
		ttl = time.Second
	}

	firstUse, err := r.client.SetNX(ctx, redisKeyPrefix+id, "1", ttl).Result()
	if err != nil {
		return false, autherrors.Wrapf(err, "redis SETNX")
	}
	return firstUse, nil
}

func (r *RedisRepo) Close() error {
	return r.client.Close()
}
