// Package read реализует HTTP-обработчик чтения одного термина по ID.
package read

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/glotecht/glossary-api/internal/http/response"
	"github.com/glotecht/glossary-api/internal/lib/sl"
	"github.com/glotecht/glossary-api/internal/models"
	"github.com/glotecht/glossary-api/internal/storage"
)

// Handler управляет HTTP-запросами чтения термина.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики каталога
}

// Service описывает интерфейс бизнес-логики чтения термина.
type Service interface {
	Read(ctx context.Context, id int) (*models.Term, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Один термин по ID
// @Description Возвращает термин по его числовому ID.
// @Tags Terms
// @Produce json
// @Param id path int true "ID термина"
// @Success 200 {object} models.Term "Найденный термин"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Термин не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении термина"
// @Router /api/terms/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.term.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid term id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid term id"))
		return
	}

	result, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("term not found", slog.Int("tid", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(fmt.Sprintf("Term with ID %d not found.", id)))
			return
		}
		log.Error("failed to read term", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to retrieve term"))
		return
	}

	render.JSON(w, r, result)
}
