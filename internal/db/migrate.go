package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/Spok95/admissions-site/internal/db/migrations"
)

// Migrate applies the embedded goose migrations.
func Migrate(ctx context.Context, database *sql.DB, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(gooseLogger{log.Sugar()})
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, database, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	v, err := goose.GetDBVersionContext(ctx, database)
	if err != nil {
		return fmt.Errorf("goose version: %w", err)
	}
	log.Info("migrations applied", zap.Int64("version", v))
	return nil
}

type gooseLogger struct {
	s *zap.SugaredLogger
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) { l.s.Fatalf(format, v...) }
func (l gooseLogger) Printf(format string, v ...interface{}) { l.s.Infof(format, v...) }
