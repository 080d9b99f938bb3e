package postgres_test

import (
	"net/url"
	"petcare/config"
	"petcare/infras/postgres"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoint_DSN(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "test_"
	cfg.DB.Postgres.Write.Username = "app"
	cfg.DB.Postgres.Write.Password = "p@ss:word/1"
	cfg.DB.Postgres.Write.Host = "primary"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Name = "petcare"
	cfg.DB.Postgres.Write.SSLMode = "disable"
	cfg.DB.Postgres.Read.Host = "replica"
	cfg.DB.Postgres.Read.Port = "5433"
	cfg.DB.Postgres.Read.Name = "petcare"

	write, err := url.Parse(postgres.WriteEndpoint(cfg).DSN(url.Values{"x-migrations-table": {"schema_migrations"}}))
	require.NoError(t, err)

	password, _ := write.User.Password()

	assert.Equal(t, "postgres", write.Scheme)
	assert.Equal(t, "primary:5432", write.Host)
	assert.Equal(t, "/test_petcare", write.Path)
	assert.Equal(t, "app", write.User.Username())
	assert.Equal(t, "p@ss:word/1", password)
	assert.Equal(t, "disable", write.Query().Get("sslmode"))
	assert.Equal(t, "schema_migrations", write.Query().Get("x-migrations-table"))

	read, err := url.Parse(postgres.ReadEndpoint(cfg).DSN(nil))
	require.NoError(t, err)

	assert.Equal(t, "replica:5433", read.Host)
	assert.Equal(t, "/test_petcare", read.Path)
	assert.Empty(t, read.Query().Get("sslmode"))
}
