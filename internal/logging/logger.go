// Package logging builds the process logger.
package logging

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Spok95/admissions-site/internal/ctxutil"
)

const serviceName = "admissions-site"

type Log struct {
	Base   *zap.Logger
	Sugar  *zap.SugaredLogger
	Level  zap.AtomicLevel
	Closer func()
}

// ParseLevel falls back to info for anything zap does not recognise.
func ParseLevel(level string) zap.AtomicLevel {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return lvl
}

func isProd(env string) bool { return strings.EqualFold(strings.TrimSpace(env), "prod") }

// Init builds a JSON logger for prod and a console logger otherwise. Every
// entry carries the service name and, when known, the release.
func Init(level, env, release string) (*Log, error) {
	cfg := zap.NewDevelopmentConfig()
	if isProd(env) {
		cfg = zap.NewProductionConfig()
	}
	lvl := ParseLevel(level)
	cfg.Level = lvl
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	fields := []zap.Field{zap.String("service", serviceName)}
	if release != "" {
		fields = append(fields, zap.String("release", release))
	}
	base, err := cfg.Build(zap.AddStacktrace(zap.ErrorLevel), zap.Fields(fields...))
	if err != nil {
		return nil, err
	}
	return &Log{
		Base:   base,
		Sugar:  base.Sugar(),
		Level:  lvl,
		Closer: func() { _ = base.Sync() },
	}, nil
}

// ForContext tags log with the request id and operation carried by ctx.
func ForContext(ctx context.Context, log *zap.Logger) *zap.Logger {
	if id, ok := ctxutil.RequestID(ctx); ok {
		log = log.With(zap.String("request_id", id))
	}
	if op, ok := ctxutil.Op(ctx); ok {
		log = log.With(zap.String("op", op))
	}
	return log
}
