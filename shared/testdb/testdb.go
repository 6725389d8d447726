//go:build integration

// Package testdb starts a throwaway Postgres for repository integration tests.
package testdb

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"hotelbook/helper"
	"hotelbook/infras/postgres"

	"github.com/docker/go-connections/nat"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // driver
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image    = "postgres:17"
	user     = "test"
	password = "testpass"
	database = "hotelbook"

	startupTimeout = 2 * time.Minute

	postgresPort nat.Port = "5432/tcp"
)

func dsn(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port.Port(), database)
}

// New starts a container, applies every migration and returns a connection sharing one pool.
// The container is terminated when the test ends.
func New(t *testing.T) *postgres.Connection {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(postgresPort)},
			Env: map[string]string{
				"POSTGRES_USER":     user,
				"POSTGRES_PASSWORD": password,
				"POSTGRES_DB":       database,
			},
			WaitingFor: wait.ForSQL(postgresPort, "postgres", dsn).
				WithStartupTimeout(startupTimeout),
		},
		Started: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, postgresPort)
	require.NoError(t, err)

	url := dsn(host, port)

	require.NoError(t, helper.Migrate("file://"+migrationsDir(), url, helper.ActionUp))

	db, err := sqlx.Connect("postgres", url)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return postgres.NewFromDB(db)
}

func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)

	return filepath.Join(filepath.Dir(file), "..", "..", "migrations", "postgres")
}
