// Package glossary собирает приложение глоссария: хранилище, миграции,
// бизнес-логику, маршруты и HTTP-сервер с корректным завершением.
package glossary

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/glotecht/glossary-api/internal/config"
	"github.com/glotecht/glossary-api/internal/lib/jwt"
	"github.com/glotecht/glossary-api/internal/migrations"
	authservice "github.com/glotecht/glossary-api/internal/services/auth"
	termservice "github.com/glotecht/glossary-api/internal/services/term"
	userservice "github.com/glotecht/glossary-api/internal/services/user"
	"github.com/glotecht/glossary-api/internal/storage"
)

// App хранит собранные компоненты приложения.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

// New собирает приложение: открывает хранилище, применяет миграции,
// создает сервисы и маршрутизатор.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	termService := termservice.New(db, logger)
	userService := userservice.New(db, logger)
	authService := authservice.New(db, jwtMaker, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, jwtMaker, termService, userService, authService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до отмены контекста или ошибки.
// При отмене контекста сервер завершается корректно с таймаутом.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
