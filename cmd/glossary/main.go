// Package main содержит точку входа сервиса глоссария.

// @title           GloTechT Glossary API
// @version         1.0
// @description     API двуязычного (EN/FR) глоссария терминологии прорывных технологий
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/glotecht/glossary-api/internal/app/glossary"
	"github.com/glotecht/glossary-api/internal/config"
)

func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Info("starting glossary-service", slog.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := glossary.New(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize glossary app", slog.Any("err", err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("glossary app stopped with error", slog.Any("err", err))
		os.Exit(1)
	}
}
