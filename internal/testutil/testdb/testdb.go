//go:build testutil

// Package testdb starts a throwaway Postgres in a container with the schema
// migrated, for integration tests built with -tags testutil.
package testdb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/lib/pq"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/zap"

	"github.com/Spok95/admissions-site/internal/db"
)

type DBHandle struct {
	DB     *sql.DB
	cancel func()
	stop   func(context.Context) error
}

func (h *DBHandle) Close() {
	if h.DB != nil {
		_ = h.DB.Close()
	}
	if h.stop != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = h.stop(ctx)
	}
	if h.cancel != nil {
		h.cancel()
	}
}

// Start uses lib/pq on purpose: the service is run on pgx in production, so
// the integration suite covers the other driver's error types too.
func Start(ctx context.Context) (*DBHandle, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)

	pg, err := postgres.RunContainer(ctx,
		tc.WithImage("postgres:17-alpine"),
		postgres.WithDatabase("admissions"),
		postgres.WithUsername("admissions"),
		postgres.WithPassword("admissions"),
	)
	if err != nil {
		cancel()
		return nil, err
	}
	fail := func(err error) (*DBHandle, error) {
		_ = pg.Terminate(context.Background())
		cancel()
		return nil, err
	}

	uri, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return fail(err)
	}
	database, err := sql.Open("postgres", uri)
	if err != nil {
		return fail(err)
	}
	if err := waitReady(ctx, database); err != nil {
		_ = database.Close()
		return fail(err)
	}
	if err := db.Migrate(ctx, database, zap.NewNop()); err != nil {
		_ = database.Close()
		return fail(err)
	}

	return &DBHandle{DB: database, cancel: cancel, stop: pg.Terminate}, nil
}

func waitReady(ctx context.Context, database *sql.DB) error {
	dead := time.Now().Add(20 * time.Second)
	for time.Now().Before(dead) {
		if err := database.PingContext(ctx); err == nil {
			return nil
		}
		time.Sleep(200 * time.Millisecond)
	}
	return errors.New("db not ready")
}

// Truncate empties every table and resets the id sequences.
func (h *DBHandle) Truncate(ctx context.Context) error {
	_, err := h.DB.ExecContext(ctx, `TRUNCATE test_details, users, bookings RESTART IDENTITY CASCADE`)
	return err
}
