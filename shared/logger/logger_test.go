package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"petcare/config"
	"petcare/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restore(t *testing.T) {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	originalTimeFormat := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
		zerolog.TimeFieldFormat = originalTimeFormat
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestConfigureOutput_Level(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		logLevel string
		want     zerolog.Level
	}{
		{name: "explicit level", env: "production", logLevel: "warn", want: zerolog.WarnLevel},
		{name: "production default", env: "production", want: zerolog.InfoLevel},
		{name: "development default", env: "development", want: zerolog.DebugLevel},
		{name: "unknown level falls back", env: "production", logLevel: "loud", want: zerolog.InfoLevel},
		{name: "disabled", env: "development", logLevel: "disabled", want: zerolog.Disabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)

			cfg := &config.Config{}
			cfg.Server.Env = tt.env
			cfg.Server.LogLevel = tt.logLevel

			logger.ConfigureOutput(cfg, &bytes.Buffer{})

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestConfigureOutput_ProductionWritesJSON(t *testing.T) {
	restore(t)

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.App.Name = "petcare"

	var buf bytes.Buffer
	logger.ConfigureOutput(cfg, &buf)

	log.Info().Str("reference", "BK000001ABCD").Msg("booking confirmed")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	assert.Equal(t, "petcare", line["app"])
	assert.Equal(t, "BK000001ABCD", line["reference"])
	assert.Equal(t, "booking confirmed", line["message"])
	assert.Equal(t, "info", line["level"])
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	logger.ErrorWithStack(errors.New("connection refused"))

	assert.Contains(t, buf.String(), "connection refused")
	assert.Contains(t, buf.String(), `"level":"error"`)
}
