package negotiation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig configures the Redis-backed settings store connection.
type RedisConfig struct {
	ConnectionURL  string        `env:"LANG_REDIS_URL" envDefault:"redis://localhost:6379/0"` // ConnectionURL should be in the format "redis://:password@localhost:6379/0".
	RetryAttempts  int           `env:"LANG_REDIS_RETRY_ATTEMPTS" envDefault:"3"`             // RetryAttempts is the number of connection attempts.
	RetryInterval  time.Duration `env:"LANG_REDIS_RETRY_INTERVAL" envDefault:"5s"`            // RetryInterval is the wait between attempts.
	ConnectTimeout time.Duration `env:"LANG_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`          // ConnectTimeout bounds the whole connect sequence.
}

// ConnectRedis establishes a Redis connection for the settings store,
// retrying per the configuration before giving up.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	for range cfg.RetryAttempts {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrStoreUnavailable, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrStoreUnavailable
}

const (
	redisMethodKeyPrefix = "langkit:negotiation:methods:"
	redisTypesKey        = "langkit:negotiation:types"
)

// RedisStore is a SettingsStore backed by Redis. Each type's method sequence
// is stored as a JSON array under its own key, so a Set replaces the whole
// sequence atomically and readers never observe a partial write.
type RedisStore struct {
	client redis.Cmdable
}

// NewRedisStore creates a settings store on top of the given client.
func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

// Get returns the stored sequence for the type.
func (s *RedisStore) Get(ctx context.Context, t TypeID) ([]MethodID, error) {
	raw, err := s.client.Get(ctx, redisMethodKeyPrefix+string(t)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	var seq []MethodID
	if err := json.Unmarshal([]byte(raw), &seq); err != nil {
		return nil, errors.Join(ErrCorruptSettings, err)
	}
	return seq, nil
}

// Set replaces the stored sequence for the type.
func (s *RedisStore) Set(ctx context.Context, t TypeID, seq []MethodID) error {
	raw, err := json.Marshal(seq)
	if err != nil {
		return errors.Join(ErrCorruptSettings, err)
	}
	if err := s.client.Set(ctx, redisMethodKeyPrefix+string(t), raw, 0).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// EnabledTypes returns the recorded configurable type IDs.
func (s *RedisStore) EnabledTypes(ctx context.Context) ([]TypeID, error) {
	raw, err := s.client.Get(ctx, redisTypesKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	var types []TypeID
	if err := json.Unmarshal([]byte(raw), &types); err != nil {
		return nil, errors.Join(ErrCorruptSettings, err)
	}
	return types, nil
}

// SetEnabledTypes replaces the recorded configurable type IDs.
func (s *RedisStore) SetEnabledTypes(ctx context.Context, types []TypeID) error {
	raw, err := json.Marshal(types)
	if err != nil {
		return errors.Join(ErrCorruptSettings, err)
	}
	if err := s.client.Set(ctx, redisTypesKey, raw, 0).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

var _ SettingsStore = (*RedisStore)(nil)
