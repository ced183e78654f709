package postgres_test

import (
	"net/url"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/infrastructure/config"
	"blog-service/internal/infrastructure/outbound/repository/postgres"
)

func TestDSN(t *testing.T) {
	cfg := config.Database{
		Username: "blog",
		Password: "p@ss:w/rd?#%",
		Host:     "blog-db",
		Port:     "5432",
		DbName:   "blog",
		SSLMode:  "disable",
	}

	t.Run("Escapes credentials", func(t *testing.T) {
		dsn := postgres.DSN("pgx5", cfg)

		u, err := url.Parse(dsn)
		require.NoError(t, err)
		assert.Equal(t, "pgx5", u.Scheme)
		assert.Equal(t, "blog", u.User.Username())
		password, ok := u.User.Password()
		require.True(t, ok)
		assert.Equal(t, "p@ss:w/rd?#%", password)
		assert.Equal(t, "blog-db:5432", u.Host)
		assert.Equal(t, "/blog", u.Path)
		assert.Equal(t, "disable", u.Query().Get("sslmode"))
	})

	t.Run("Pool config sees the raw password", func(t *testing.T) {
		poolConfig, err := pgxpool.ParseConfig(postgres.DSN("postgresql", cfg))
		require.NoError(t, err)

		assert.Equal(t, "blog", poolConfig.ConnConfig.User)
		assert.Equal(t, "p@ss:w/rd?#%", poolConfig.ConnConfig.Password)
		assert.Equal(t, "blog-db", poolConfig.ConnConfig.Host)
		assert.Equal(t, uint16(5432), poolConfig.ConnConfig.Port)
		assert.Equal(t, "blog", poolConfig.ConnConfig.Database)
	})

	t.Run("IPv6 host", func(t *testing.T) {
		v6 := cfg
		v6.Host = "::1"

		u, err := url.Parse(postgres.DSN("postgresql", v6))
		require.NoError(t, err)
		assert.Equal(t, "::1", u.Hostname())
		assert.Equal(t, "5432", u.Port())
	})
}
