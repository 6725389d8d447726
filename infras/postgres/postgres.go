package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"hotelbook/config"

	"github.com/cenkalti/backoff/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresConnMaxLifetime = 30 * time.Minute
)

// Connection splits traffic between a primary for writes and row locks and a replica for listings.
// Availability search reads inventory from the replica; booking confirmation always goes through Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	name     string
	host     string
	port     string
	username string
	password string
	database string
	sslMode  string
	timezone string
}

func New(config *config.Config) *Connection {
	pg := config.DB.Postgres

	write := endpoint{"write", pg.Write.Host, pg.Write.Port, pg.Write.Username, pg.Write.Password,
		getDBName(config, pg.Write.Name), pg.Write.SSLMode, pg.Write.Timezone}
	read := endpoint{"read", pg.Read.Host, pg.Read.Port, pg.Read.Username, pg.Read.Password,
		getDBName(config, pg.Read.Name), pg.Read.SSLMode, pg.Read.Timezone}

	writeDB := connect(config, write)

	if read.dsn() == write.dsn() {
		return NewFromDB(writeDB)
	}

	return &Connection{
		Read:  connect(config, read),
		Write: writeDB,
	}
}

// NewFromDB shares one pool for reads and writes.
func NewFromDB(db *sqlx.DB) *Connection {
	return &Connection{
		Read:  db,
		Write: db,
	}
}

func (c *Connection) Close() error {
	if err := c.Write.Close(); err != nil {
		return fmt.Errorf("failed to close write connection: %w", err)
	}

	if c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			return fmt.Errorf("failed to close read connection: %w", err)
		}
	}

	return nil
}

func getDBName(config *config.Config, baseName string) string {
	return config.DB.Postgres.Prefix + baseName
}

// dsn escapes credentials so passwords with reserved characters survive.
func (e endpoint) dsn() string {
	query := url.Values{}
	if e.sslMode != "" {
		query.Set("sslmode", e.sslMode)
	}

	if e.timezone != "" {
		query.Set("timezone", e.timezone)
	}

	descriptor := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.username, e.password),
		Host:     net.JoinHostPort(e.host, e.port),
		Path:     "/" + e.database,
		RawQuery: query.Encode(),
	}

	return descriptor.String()
}

// connect retries with a fixed wait and exits the process when every attempt fails.
func connect(config *config.Config, e endpoint) *sqlx.DB {
	pg := config.DB.Postgres
	logger := log.With().Str("name", e.name).Str("host", e.host).Str("port", e.port).Str("dbName", e.database).Logger()

	db, err := backoff.Retry(context.Background(),
		func() (*sqlx.DB, error) {
			return sqlx.Connect("postgres", e.dsn())
		},
		backoff.WithBackOff(backoff.NewConstantBackOff(time.Duration(pg.RetryWaitTime)*time.Second)),
		backoff.WithMaxTries(uint(max(pg.MaxRetry, 1))), //nolint:gosec
		backoff.WithNotify(func(err error, next time.Duration) {
			logger.Error().Err(err).Dur("retry_in", next).Msg("Failed connecting to database, retrying")
		}),
	)
	if err != nil {
		logger.Fatal().Err(err).Int("attempts", pg.MaxRetry).Msg("Could not connect to database")

		return nil
	}

	db.SetMaxOpenConns(pg.MaxOpenConns)
	db.SetMaxIdleConns(pg.MaxIdleConns)
	db.SetConnMaxLifetime(postgresConnMaxLifetime)

	logger.Info().Msg("Connected to database")

	return db
}
