package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Totarae/shortlink/internal/model"
)

//go:generate mockgen -destination=../mocks/blacklist_mock.go -package=mocks github.com/Totarae/shortlink/internal/auth Blacklist

// DefaultBlacklistKey ключ документа в Redis.
const DefaultBlacklistKey = "blacklist"

// Blacklist список отозванных API-ключей.
type Blacklist interface {
	Contains(ctx context.Context, apiKey string) (bool, error)
}

// StaticBlacklist список из конфигурации.
type StaticBlacklist []string

func (s StaticBlacklist) Contains(_ context.Context, apiKey string) (bool, error) {
	return slices.Contains(s, apiKey), nil
}

// RedisBlacklist читает документ {"blacklistedKeys": [...]} при каждой проверке.
type RedisBlacklist struct {
	client *redis.Client
	key    string
}

func NewRedisBlacklist(client *redis.Client, key string) *RedisBlacklist {
	if key == "" {
		key = DefaultBlacklistKey
	}
	return &RedisBlacklist{client: client, key: key}
}

// Contains сообщает, отозван ли ключ. Отсутствующий документ означает пустой список.
func (b *RedisBlacklist) Contains(ctx context.Context, apiKey string) (bool, error) {
	raw, err := b.client.Get(ctx, b.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read blacklist: %w", err)
	}

	var doc model.Blacklist
	if err := json.Unmarshal(raw, &doc); err != nil {
		return false, fmt.Errorf("parse blacklist: %w", err)
	}
	return slices.Contains(doc.BlacklistedKeys, apiKey), nil
}

// NewRedisClient подключается к Redis по URL вида redis://host:port/db или по адресу host:port.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}
