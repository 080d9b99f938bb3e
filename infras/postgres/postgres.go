package postgres

//nolint:revive
import (
	"errors"
	"net"
	"net/url"
	"petcare/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

// Connection splits reads from writes. Bookings are written to Write and listed from Read,
// which may be a replica.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Endpoint is one side of the read/write pair.
type Endpoint struct {
	Role     string
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	SSLMode  string
}

func WriteEndpoint(cfg *config.Config) Endpoint {
	return endpoint("write", cfg.DB.Postgres.Prefix, cfg.DB.Postgres.Write)
}

func ReadEndpoint(cfg *config.Config) Endpoint {
	return endpoint("read", cfg.DB.Postgres.Prefix, cfg.DB.Postgres.Read)
}

func endpoint(role, prefix string, c config.Endpoint) Endpoint {
	return Endpoint{
		Role:     role,
		Host:     c.Host,
		Port:     c.Port,
		Username: c.Username,
		Password: c.Password,
		Name:     prefix + c.Name,
		SSLMode:  c.SSLMode,
	}
}

// DSN renders the endpoint as a postgres URL. Credentials are escaped; extra is merged into
// the query string.
func (e Endpoint) DSN(extra url.Values) string {
	query := url.Values{}

	if e.SSLMode != "" {
		query.Set("sslmode", e.SSLMode)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     e.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  connect(cfg, ReadEndpoint(cfg)),
		Write: connect(cfg, WriteEndpoint(cfg)),
	}
}

// Close releases both pools.
func (c *Connection) Close() error {
	return errors.Join(c.Read.Close(), c.Write.Close())
}

func connect(cfg *config.Config, endpoint Endpoint) *sqlx.DB {
	pg := cfg.DB.Postgres
	attempts := max(pg.MaxRetry, 1)

	for attempt := range attempts {
		db, err := sqlx.Connect(driverName, endpoint.DSN(nil))
		if err == nil {
			db.SetMaxOpenConns(pg.MaxOpenConns)
			db.SetMaxIdleConns(pg.MaxIdleConns)
			db.SetConnMaxLifetime(time.Duration(pg.ConnMaxLifetimeMinutes) * time.Minute)

			log.Info().
				Str("role", endpoint.Role).
				Str("host", endpoint.Host).
				Str("port", endpoint.Port).
				Str("dbName", endpoint.Name).
				Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("role", endpoint.Role).
			Str("host", endpoint.Host).
			Str("dbName", endpoint.Name).
			Int("attempt", attempt+1).
			Int("of", attempts).
			Msg("Failed connecting to database")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	log.Fatal().Str("role", endpoint.Role).Str("host", endpoint.Host).Msgf("Could not connect to database after %d attempts", attempts)

	return nil
}
