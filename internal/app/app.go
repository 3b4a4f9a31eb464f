package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/tipsdaniel/blog-api/config"
	"github.com/tipsdaniel/blog-api/internal/blog"
	"github.com/tipsdaniel/blog-api/internal/db"
	"github.com/tipsdaniel/blog-api/internal/rest"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	repository := db.New(dbConnect)
	handler := rest.NewPostHandler(
		blog.NewManager(repository),
		rest.Config{
			AdminUsername:  cfg.Admin.Username,
			AdminPassword:  cfg.Admin.Password,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		logger,
	)

	return &App{
		DB:     repository,
		Logger: logger,
		Echo:   handler.RegisterRoutes(),
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
