package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/portfolio-cms/portfolio-backend/config"
	"github.com/portfolio-cms/portfolio-backend/internal/api/http/middleware"
	"github.com/portfolio-cms/portfolio-backend/internal/api/http/routes"
	"github.com/portfolio-cms/portfolio-backend/internal/bootstrap"
	"github.com/portfolio-cms/portfolio-backend/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg.App.Environment, cfg.App.LogLevel)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	db, err := postgres.Open(ctx, postgres.DSN(&cfg.Database))
	if err != nil {
		slog.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		slog.Error("ensure schema", "err", err)
		os.Exit(1)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	if err := routes.Register(r, routes.Deps{DB: db, Cfg: cfg}); err != nil {
		slog.Error("register routes", "err", err)
		os.Exit(1)
	}

	slog.Info("starting server", "port", cfg.Server.Port, "env", cfg.App.Environment)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
