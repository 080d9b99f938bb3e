package redis

import (
	"context"
	"net"
	"petcare/config"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingAttempts = 3

// Options maps the primary cache settings onto the client options.
func Options(cfg *config.Config) *goRedis.Options {
	primary := cfg.Cache.Redis.Primary

	return &goRedis.Options{
		Addr:        net.JoinHostPort(primary.Host, primary.Port),
		Password:    primary.Password,
		DB:          primary.DB,
		DialTimeout: time.Duration(cfg.Cache.Redis.DialTimeoutSeconds) * time.Second,
	}
}

// New connects to the primary cache. Listing caches and the rate limiter depend on it, so a
// cache that never answers stops startup.
func New(cfg *config.Config) *goRedis.Client {
	opts := Options(cfg)
	client := goRedis.NewClient(opts)

	var err error

	for attempt := range pingAttempts {
		ctx, cancel := context.WithTimeout(context.Background(), opts.DialTimeout+time.Second)
		err = client.Ping(ctx).Err()

		cancel()

		if err == nil {
			log.Info().Str("addr", opts.Addr).Int("db", opts.DB).Msg("Connected to Redis")

			return client
		}

		log.Warn().Err(err).Str("addr", opts.Addr).Int("attempt", attempt+1).Msg("Redis not reachable yet")
		time.Sleep(time.Second)
	}

	log.Fatal().Err(err).Str("addr", opts.Addr).Msg("Failed to connect to Redis")

	return nil
}
