package main

import (
	"petcare/config"
	"petcare/di"
	"petcare/helper"
	"petcare/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Pet Care Booking API
// @version 1.0
// @description Grooming and vet service bookings, pet hotel room bookings and the admin panel API.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.
func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.Configure(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	if err := helper.AutoMigrate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	http := di.InitializeService()
	http.Serve()
}
