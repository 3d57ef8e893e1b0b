// Package remove реализует HTTP-обработчик удаления термина по ID.
package remove

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
	"github.com/glotecht/glossary-api/internal/storage"
)

// Handler управляет HTTP-запросами удаления термина.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики терминов
}

// Service описывает интерфейс бизнес-логики удаления термина.
type Service interface {
	Remove(ctx context.Context, id int) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить термин
// @Description Удаляет статью глоссария по ID. Удаление необратимо.
// @Tags Terms
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID термина"
// @Success 200 {object} map[string]any "Успешное удаление термина"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Термин не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при удалении термина"
// @Router /api/terms/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.term.remove"
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

	if err := h.service.Remove(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("term not found", slog.Int("tid", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(fmt.Sprintf("Term with ID %d not found.", id)))
			return
		}
		log.Error("failed to delete term", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to delete term"))
		return
	}

	render.JSON(w, r, response.Message("Term deleted successfully!"))
}
