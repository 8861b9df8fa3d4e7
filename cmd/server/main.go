package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Spok95/admissions-site/internal/app"
	"github.com/Spok95/admissions-site/internal/config"
	"github.com/Spok95/admissions-site/internal/db"
	"github.com/Spok95/admissions-site/internal/httpapi"
	"github.com/Spok95/admissions-site/internal/logging"
	"github.com/Spok95/admissions-site/internal/observability"
	"github.com/Spok95/admissions-site/internal/quiz"
	"github.com/Spok95/admissions-site/internal/submission"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env, cfg.Release)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Closer()

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, cfg.Release)
	if err != nil {
		lg.Base.Warn("sentry init failed", zap.Error(err))
	}
	defer flush()

	if err := run(cfg, lg.Base); err != nil {
		observability.CaptureErr(err)
		lg.Base.Error("server stopped", zap.Error(err))
		flush()
		lg.Closer()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	if err := db.Migrate(ctx, database, log); err != nil {
		return err
	}

	store := db.NewStore(database)
	service := submission.NewService(store, log.Named("submission"))
	api := httpapi.NewAPI(service, quiz.NewBank(), log.Named("http"), cfg.Location)

	srv := app.NewHTTPServer(cfg.HTTPAddr, app.NewHandler(httpapi.NewRouter(api), store), cfg.ShutdownTimeout, log)
	return srv.Run(ctx)
}
