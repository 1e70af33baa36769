// Package kv implements the key-value store port. Redis backs it in
// production; the in-memory store covers single-node and test setups.
package kv

import (
	"context"
	"log/slog"

	"million/config"
	"million/internal/domain/lifecycle"
	"million/internal/domain/service"
	"million/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type redisStore struct {
	client *redis.Client
}

// New returns the key-value store. Without a redis section in the config the
// in-memory store is used instead.
func New(params Params) (service.KeyValueStore, error) {
	if params.Config.Redis == nil {
		params.Logger.Info("Redis not configured, using in-memory key-value store")

		return NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			params.Logger.Info("Redis connected",
				slog.String("addr", params.Config.Redis.Addr),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &redisStore{client: client}, nil
}

// SetAdd adds a member to the set stored under key.
func (s *redisStore) SetAdd(ctx context.Context, key, member string) error {
	if err := s.client.SAdd(ctx, key, member).Err(); err != nil {
		return errors.Wrap(err, "failed to add set member")
	}

	return nil
}

// SetRemove removes a member from the set stored under key.
func (s *redisStore) SetRemove(ctx context.Context, key, member string) error {
	if err := s.client.SRem(ctx, key, member).Err(); err != nil {
		return errors.Wrap(err, "failed to remove set member")
	}

	return nil
}

// SetMembers returns all members of the set stored under key.
func (s *redisStore) SetMembers(ctx context.Context, key string) ([]string, error) {
	members, err := s.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read set members")
	}

	return members, nil
}
