package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/article-feed/config"
	_ "github.com/daniilsolovey/article-feed/docs"
	"github.com/daniilsolovey/article-feed/internal/app"
	"github.com/daniilsolovey/article-feed/internal/db"
)

var (
	flConfig  = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug   = flag.Bool("debug", false, "enable debug mode")
	flMigrate = flag.Bool("migrate", false, "apply database migrations before start")
	cfg       = config.Default()
	lg        *slog.Logger
)

// @title Article Feed API
// @version 1.0
// @description Published article listings, search, homepage and RSS feed
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}

	ctx := context.Background()

	if *flMigrate {
		connConfig, err := db.ConnConfig(&cfg.Database)
		exitOnError(err)
		exitOnError(db.Migrate(ctx, connConfig))
		lg.Info("migrations applied")
	}

	dbConn := pg.Connect(&cfg.Database)
	if cfg.LogQueries {
		dbConn.AddQueryHook(db.NewQueryHook(lg))
	}

	service := app.New(&cfg, dbConn, lg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := service.GracefulShutdown(shutdownCtx); err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
	if err := service.Repo.Close(); err != nil {
		lg.Error("db close failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
