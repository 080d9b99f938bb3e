package main

import (
	"os"
	"petcare/config"
	"petcare/helper"
	"petcare/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required: up, step-up, down or drop")
	}

	action, err := helper.ParseAction(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid migration action. Use 'up', 'step-up', 'down' or 'drop'")
	}

	cfg := config.Get()

	logger.Configure(cfg)

	if err := helper.Run(cfg, action); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
