// Package labels реализует HTTP-обработчик справочника семантических меток.
package labels

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

// Handler управляет HTTP-запросами справочника меток.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики каталога
}

// Service описывает интерфейс бизнес-логики справочника меток.
type Service interface {
	SemanticLabels(ctx context.Context) ([]models.LabelPair, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Справочник семантических меток
// @Description Возвращает различные пары семантических меток. Хвостовые аннотации в квадратных скобках удалены, дубликаты по английской метке отброшены.
// @Tags Terms
// @Produce json
// @Success 200 {array} models.LabelPair "Пары меток"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении меток"
// @Router /api/terms/semantic-labels [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.term.labels"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	result, err := h.service.SemanticLabels(r.Context())
	if err != nil {
		log.Error("failed to list semantic labels", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to retrieve semantic labels"))
		return
	}

	render.JSON(w, r, result)
}
