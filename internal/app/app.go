package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/article-feed/config"
	"github.com/daniilsolovey/article-feed/internal/cache"
	"github.com/daniilsolovey/article-feed/internal/db"
	"github.com/daniilsolovey/article-feed/internal/newsportal"
	"github.com/daniilsolovey/article-feed/internal/rest"
	"github.com/daniilsolovey/article-feed/internal/rpc"
)

const menuCacheName = "menus"

type App struct {
	Repo    *db.Repository
	Manager *newsportal.Manager
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  *config.Config
}

func New(cfg *config.Config, dbConn *pg.DB, logger *slog.Logger) *App {
	repo := db.New(dbConn)
	manager := newsportal.NewManager(
		repo,
		cache.New(menuCacheName, cfg.Cache.TTL.Duration),
		cfg.Settings(),
		logger,
	)

	handler := rest.NewArticleHandler(manager, cfg.FeedConfig(), logger)

	return &App{
		Repo:    repo,
		Manager: manager,
		Logger:  logger,
		Echo:    handler.RegisterRoutes(rpc.New(logger, manager)),
		Config:  cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	if err := a.Repo.Ping(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.InfoContext(ctx, "service started", "addr", addr)

	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
