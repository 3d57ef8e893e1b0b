// Package middlewarectx содержит HTTP middleware административной части:
// проверку JWT токенов, ограничение частоты запросов и счётчик запросов.
//
// JWTMiddleware проверяет наличие и валидность JWT токена в заголовке
// Authorization и в случае успеха добавляет в контекст имя и ID пользователя
// для дальнейшего использования в обработчиках.
//
// Браузерные клиенты (Accept: text/html) при отсутствии токена перенаправляются
// на страницу входа; API-клиенты получают HTTP 401 Unauthorized с JSON-телом.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/glotecht/glossary-api/internal/http/response"
	"github.com/glotecht/glossary-api/internal/lib/jwt"
	"github.com/glotecht/glossary-api/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// User — ключ для имени пользователя в контексте
	User Key = "username"
	// UserID — ключ для ID пользователя в контексте
	UserID Key = "user_id"
)

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке
// Authorization.
//
// Если токен валиден, добавляет имя и ID пользователя в контекст запроса.
// Иначе API-клиенты получают 401, браузерные — редирект на /login.
func JWTMiddleware(maker jwt.Maker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				deny(w, r, "missing or invalid authorization header")
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := maker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				deny(w, r, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), User, claims.Username)
			ctx = context.WithValue(ctx, UserID, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// deny завершает неавторизованный запрос: браузеру — редирект на страницу
// входа с возвратом на исходный путь, остальным — 401 с JSON-телом.
func deny(w http.ResponseWriter, r *http.Request, msg string) {
	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
		return
	}
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error(msg))
}
