// Package names реализует HTTP-обработчик краткого списка статей:
// пары (EN, FR) в порядке английского термина.
package names

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/glotecht/glossary-api/internal/http/response"
	"github.com/glotecht/glossary-api/internal/lib/sl"
	"github.com/glotecht/glossary-api/internal/models"
)

// Handler управляет HTTP-запросами краткого списка статей.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики каталога
}

// Service описывает интерфейс бизнес-логики краткого списка.
type Service interface {
	Names(ctx context.Context) ([]models.TermName, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Краткий список статей
// @Description Возвращает пары (EN, FR) всех статей, упорядоченные по английскому термину.
// @Tags Terms
// @Produce json
// @Success 200 {array} models.TermName "Пары терминов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении списка"
// @Router /api/terms/list [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.term.names"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	result, err := h.service.Names(r.Context())
	if err != nil {
		log.Error("failed to list term names", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to retrieve terms list"))
		return
	}

	render.JSON(w, r, result)
}
