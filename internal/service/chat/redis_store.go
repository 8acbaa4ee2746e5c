package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/psychmaster/psychmaster/internal/config"
	"github.com/psychmaster/psychmaster/internal/model/chat"
)

const keyPrefix = "psychmaster:session:"

// RedisStore keeps sessions as JSON documents that expire after ttl.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an existing client. A ttl of zero keeps keys forever.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Save(ctx context.Context, session chat.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}
	if err := r.client.Set(ctx, keyPrefix+session.ID, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context, id string) (chat.Session, error) {
	raw, err := r.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return chat.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return chat.Session{}, fmt.Errorf("load session %s: %w", id, err)
	}

	var session chat.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return chat.Session{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	return session, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

// NewStore returns a RedisStore when Redis is configured and reachable, and a
// MemoryStore otherwise.
func NewStore(ctx context.Context, cfg config.StoreConfig) Store {
	if !cfg.RedisEnabled() {
		log.Info().Msg("session store: memory (REDIS_URL not set)")
		return NewMemoryStore()
	}

	opts, err := redisOptions(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("session store: invalid REDIS_URL, using memory")
		return NewMemoryStore()
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", opts.Addr).Msg("session store: redis unreachable, using memory")
		_ = client.Close()
		return NewMemoryStore()
	}

	log.Info().Str("addr", opts.Addr).Dur("ttl", cfg.SessionTTL).Msg("session store: redis")
	return NewRedisStore(client, cfg.SessionTTL)
}

// redisOptions accepts either a redis:// URL or a bare host:port.
func redisOptions(cfg config.StoreConfig) (*redis.Options, error) {
	raw := strings.TrimSpace(cfg.RedisURL)
	if strings.HasPrefix(raw, "redis://") || strings.HasPrefix(raw, "rediss://") {
		opts, err := redis.ParseURL(raw)
		if err != nil {
			return nil, err
		}
		if cfg.RedisPassword != "" {
			opts.Password = cfg.RedisPassword
		}
		return opts, nil
	}

	return &redis.Options{
		Addr:     raw,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}
