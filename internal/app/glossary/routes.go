// Package glossary предоставляет маршруты приложения глоссария.
package glossary

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/glotecht/glossary-api/internal/config"
	loginhandler "github.com/glotecht/glossary-api/internal/http/handlers/auth/login"
	logouthandler "github.com/glotecht/glossary-api/internal/http/handlers/auth/logout"
	"github.com/glotecht/glossary-api/internal/http/handlers/auth/updatepassword"
	"github.com/glotecht/glossary-api/internal/http/handlers/root"
	termcreate "github.com/glotecht/glossary-api/internal/http/handlers/term/create"
	"github.com/glotecht/glossary-api/internal/http/handlers/term/exportcsv"
	"github.com/glotecht/glossary-api/internal/http/handlers/term/exportxml"
	termlabels "github.com/glotecht/glossary-api/internal/http/handlers/term/labels"
	termlist "github.com/glotecht/glossary-api/internal/http/handlers/term/list"
	termnames "github.com/glotecht/glossary-api/internal/http/handlers/term/names"
	termread "github.com/glotecht/glossary-api/internal/http/handlers/term/read"
	termremove "github.com/glotecht/glossary-api/internal/http/handlers/term/remove"
	termsearch "github.com/glotecht/glossary-api/internal/http/handlers/term/search"
	termupdate "github.com/glotecht/glossary-api/internal/http/handlers/term/update"
	usercreate "github.com/glotecht/glossary-api/internal/http/handlers/user/create"
	userlist "github.com/glotecht/glossary-api/internal/http/handlers/user/list"
	userread "github.com/glotecht/glossary-api/internal/http/handlers/user/read"
	userremove "github.com/glotecht/glossary-api/internal/http/handlers/user/remove"
	userupdate "github.com/glotecht/glossary-api/internal/http/handlers/user/update"
	"github.com/glotecht/glossary-api/internal/http/middlewarectx"
	"github.com/glotecht/glossary-api/internal/http/response"
	"github.com/glotecht/glossary-api/internal/lib/jwt"
	authservice "github.com/glotecht/glossary-api/internal/services/auth"
	termservice "github.com/glotecht/glossary-api/internal/services/term"
	userservice "github.com/glotecht/glossary-api/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, jwtMaker jwt.Maker,
	termService *termservice.Service, userService *userservice.Service, authService *authservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	limiter := rate.NewLimiter(1, 3)

	// Открытые конечные точки
	r.Get("/api", root.New().ServeHTTP)
	r.Post("/login", loginhandler.New(logger, authService).ServeHTTP)
	r.Get("/logout", logouthandler.New(logger).ServeHTTP)

	r.Route("/api/terms", func(r chi.Router) {
		r.Get("/", termlist.New(logger, termService).ServeHTTP)
		r.Get("/search", termsearch.New(logger, termService).ServeHTTP)
		r.Get("/list", termnames.New(logger, termService).ServeHTTP)
		r.Get("/semantic-labels", termlabels.New(logger, termService).ServeHTTP)
		r.Get("/xml", exportxml.New(logger, termService).ServeHTTP)
		r.Get("/csv", exportcsv.New(logger, termService).ServeHTTP)
		r.Get("/{id}", termread.New(logger, termService).ServeHTTP)

		// Админские мутации включаются конфигурацией: в публичной
		// поставке каталог доступен только на чтение.
		if cfg.EnableMutations {
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
				r.Use(middlewarectx.RateLimitMiddleware(limiter, logger))
				r.Post("/", termcreate.New(logger, termService).ServeHTTP)
				r.Put("/{id}", termupdate.New(logger, termService).ServeHTTP)
				r.Delete("/{id}", termremove.New(logger, termService).ServeHTTP)
			})
		}
	})

	if cfg.EnableMutations {
		r.Route("/api/users", func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(limiter, logger))
			r.Get("/", userlist.New(logger, userService).ServeHTTP)
			r.Post("/", usercreate.New(logger, userService).ServeHTTP)
			r.Get("/{id}", userread.New(logger, userService).ServeHTTP)
			r.Put("/{id}", userupdate.New(logger, userService).ServeHTTP)
			r.Delete("/{id}", userremove.New(logger, userService).ServeHTTP)
		})
	}

	// Смена пароля доступна всегда, но только владельцу токена
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
		r.Use(middlewarectx.RateLimitMiddleware(limiter, logger))
		r.Post("/update_password/{id}", updatepassword.New(logger, authService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)

	r.NotFound(notFoundHandler)
}

// notFoundHandler отдает JSON для API-путей и HTML-страницу для остальных.
func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api") {
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("Not found"))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(notFoundPage))
}

const notFoundPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>404 - Page Not Found</title></head>
<body>
<h1>404 - Page Not Found / Page non trouv&eacute;e</h1>
<p>The page you requested does not exist. / La page demand&eacute;e n'existe pas.</p>
<p><a href="/api">Glossary API</a></p>
</body>
</html>
`
