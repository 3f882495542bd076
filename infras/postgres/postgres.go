package postgres

import (
	"fmt"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"transbook/config"
)

// The pool holds at most ten connections; callers beyond that queue inside
// database/sql until one frees up. The wait queue is unbounded.
const (
	maxIdleConnections = 10
	maxOpenConnections = 10
)

type Connection struct {
	DB *sqlx.DB
}

// New opens the connection pool without requiring the database to be up:
// the login fallback path depends on the service starting even when the
// store is unreachable, so connectivity is only probed and logged here.
func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	descriptor := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		pg.Username,
		pg.Password,
		net.JoinHostPort(pg.Host, pg.Port),
		pg.Name,
		pg.SSLMode,
	)

	sqlDB, err := sqlx.Open("postgres", descriptor)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid database descriptor")
	}

	sqlDB.SetMaxIdleConns(maxIdleConnections)
	sqlDB.SetMaxOpenConns(maxOpenConnections)

	go probe(sqlDB, pg.Host, pg.Port, pg.Name, pg.MaxRetry, pg.RetryWaitTime)

	return &Connection{DB: sqlDB}
}

func probe(sqlDB *sqlx.DB, host, port, dbName string, maxRetry, waitTime int) {
	for retry := 0; retry < maxRetry; retry++ {
		if err := sqlDB.Ping(); err == nil {
			log.
				Info().
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")

			return
		} else {
			log.
				Error().
				Err(err).
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Int("attempt", retry+1).
				Msg("Failed connecting to database, retrying")
		}

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Warn().Msg("Database unreachable, continuing without a verified connection")
}
