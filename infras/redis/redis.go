package redis

import (
	"context"
	"fmt"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"transbook/config"
)

// New builds the Redis client. A dead Redis only disables the cache, so a
// failed ping is logged rather than fatal.
func New(cfg *config.Config) *goRedis.Client {
	ctx := context.Background()
	client := goRedis.NewClient(&goRedis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Cache.Redis.Host, cfg.Cache.Redis.Port),
		Password: cfg.Cache.Redis.Password,
		DB:       cfg.Cache.Redis.DB,
	})

	_, err := client.Ping(ctx).Result()

	if err != nil {
		log.Warn().Err(err).Msg("Failed to connect to Redis, caching disabled")

		return client
	}

	log.Info().
		Int("db", cfg.Cache.Redis.DB).
		Str("host", cfg.Cache.Redis.Host).
		Str("port", cfg.Cache.Redis.Port).
		Msg("Connected to Redis")

	return client
}
