package config

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// InitRedisDB connects and pings the rate-limiter store. Redis is
// optional: callers decide whether running without it is acceptable.
func InitRedisDB(addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}

	log.Info().Str("addr", addr).Msg("connected to redis")
	return rdb, nil
}
