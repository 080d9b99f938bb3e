package config

import (
	"errors"
	"fmt"
	"io/fs"
	"petcare/shared/constant"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"      default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"petcare"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
			DialTimeoutSeconds int `envconfig:"DIAL_TIMEOUT_SECONDS" default:"5"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret    string `envconfig:"ACCESS_SECRET"`
		AccessExpireMin int    `envconfig:"ACCESS_EXPIRE_MIN" default:"60"`
	} `envconfig:"JWT"`

	Admin struct {
		Username     string `envconfig:"USERNAME"`
		PasswordHash string `envconfig:"PASSWORD_HASH"`
	} `envconfig:"ADMIN"`

	Booking struct {
		ReferenceMaxAttempts int `envconfig:"REFERENCE_MAX_ATTEMPTS" default:"3"`
	} `envconfig:"BOOKING"`

	DB struct {
		Postgres struct {
			MaxRetry               int    `envconfig:"MAX_RETRY"                 default:"3"`
			RetryWaitTime          int    `envconfig:"RETRY_WAIT_TIME"           default:"2"`
			MaxOpenConns           int    `envconfig:"MAX_OPEN_CONNS"            default:"10"`
			MaxIdleConns           int    `envconfig:"MAX_IDLE_CONNS"            default:"10"`
			ConnMaxLifetimeMinutes int    `envconfig:"CONN_MAX_LIFETIME_MINUTES" default:"30"`
			MigrationTable         string `envconfig:"MIGRATION_TABLE"`
			AutoMigrate            bool   `envconfig:"AUTO_MIGRATE"`
			Prefix                 string `envconfig:"PREFIX"`
			Read                   Endpoint `envconfig:"READ"`
			Write                  Endpoint `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Enable             bool     `envconfig:"ENABLE"`
		Brokers            []string `envconfig:"BROKERS"`
		Topic              string   `envconfig:"TOPIC"   default:"booking-events"`
		// BatchTimeoutMillis bounds how long the async writer holds a partial batch.
		BatchTimeoutMillis int64 `envconfig:"BATCH_TIMEOUT_MILLIS" default:"50"`
		SASL               struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		Assistant struct {
			APIKey string `envconfig:"API_KEY"`
			Model  string `envconfig:"MODEL"   default:"gemini-1.5-flash"`
		} `envconfig:"ASSISTANT"`
	}
}

// Endpoint is one side of the read/write database split.
type Endpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	SSLMode  string `envconfig:"SSL_MODE"`
}

// Validate reports settings that would start the service in a broken state. Everything is
// checked and the problems are joined.
func (c *Config) Validate() error {
	var errs []error

	if c.App.RateLimiter.Enable && (c.App.RateLimiter.MaxRequests <= 0 || c.App.RateLimiter.WindowSeconds <= 0) {
		errs = append(errs, errors.New("rate limiter needs positive MAX_REQUESTS and WINDOW_SECONDS"))
	}

	if c.Kafka.Enable && len(c.Kafka.Brokers) == 0 {
		errs = append(errs, errors.New("kafka is enabled without BROKERS"))
	}

	if c.Booking.ReferenceMaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("reference attempts must be at least 1, got %d", c.Booking.ReferenceMaxAttempts))
	}

	if c.Server.Env == constant.ServerEnvProduction {
		if c.JWT.AccessSecret == "" {
			errs = append(errs, errors.New("JWT access secret is required in production"))
		}

		if c.Admin.Username == "" || c.Admin.PasswordHash == "" {
			errs = append(errs, errors.New("admin credentials are required in production"))
		}
	}

	return errors.Join(errs...)
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

// Load reads envFile into the environment when it exists, then decodes the environment.
func Load(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}

		log.Warn().Str("file", envFile).Msg("No env file, using the process environment only")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	return &cfg, nil
}

// Init loads the process-wide configuration once. Validation is left to the entry points.
func Init() error {
	var err error

	once.Do(func() {
		var cfg *Config

		cfg, err = Load(".env")
		if err != nil {
			return
		}

		conf = *cfg
		initialized = true

		log.Info().Str("env", conf.Server.Env).Msg("Service configuration initialized")
	})

	return err
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
