package di

import (
	"petcare/infras/genai"
	"petcare/infras/kafka"
	"petcare/infras/otel"
	"petcare/infras/postgres"
	"petcare/transport/http"

	goRedis "github.com/redis/go-redis/v9"
)

// provideClosers lists what is released on shutdown, in order. Event and span exporters flush
// before the stores close. The assistant client is absent when no API key is configured.
func provideClosers(
	kafkaClient kafka.Client,
	assistant genai.Client,
	tracer otel.Otel,
	redisClient *goRedis.Client,
	db *postgres.Connection,
) http.Closers {
	closers := http.Closers{kafkaClient}

	if assistant != nil {
		closers = append(closers, assistant)
	}

	return append(closers, tracer, redisClient, db)
}
