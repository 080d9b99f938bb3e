package logger

import (
	"io"
	"os"
	"petcare/config"
	"petcare/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs a human readable logger used until the configuration is loaded.
func InitLogger() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	log.Trace().Msg("Zerolog initialized.")
}

// Configure switches to JSON lines in production and applies SERVER_LOG_LEVEL. Without a
// usable level, production logs at info and every other environment at debug.
func Configure(config *config.Config) {
	ConfigureOutput(config, os.Stdout)
}

func ConfigureOutput(config *config.Config, out io.Writer) {
	production := config.Server.Env == constant.ServerEnvProduction

	if !production {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Str("app", config.App.Name).Logger()

	level := DefaultLevel(config.Server.Env)

	if config.Server.LogLevel != "" {
		parsed, err := zerolog.ParseLevel(config.Server.LogLevel)
		if err != nil {
			log.Warn().Str("loglevel", config.Server.LogLevel).Msg("Unknown log level, using default.")
		} else {
			level = parsed
		}
	}

	zerolog.SetGlobalLevel(level)
	log.Debug().Str("loglevel", level.String()).Str("env", config.Server.Env).Msg("Logger configured.")
}

func DefaultLevel(env string) zerolog.Level {
	if env == constant.ServerEnvProduction {
		return zerolog.InfoLevel
	}

	return zerolog.DebugLevel
}

// ErrorWithStack logs err with the stack of the caller.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}
