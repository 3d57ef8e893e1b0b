// Package update реализует HTTP-обработчик полного обновления термина.
//
// Запрос несет полное представление статьи: отсутствующие необязательные
// поля сохраняются как NULL, а не остаются прежними.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/glotecht/glossary-api/internal/http/response"
	"github.com/glotecht/glossary-api/internal/lib/sl"
	"github.com/glotecht/glossary-api/internal/models"
	"github.com/glotecht/glossary-api/internal/services/term"
	"github.com/glotecht/glossary-api/internal/storage"
)

// Handler управляет HTTP-запросами обновления термина.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики терминов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики обновления термина.
type Service interface {
	Update(ctx context.Context, req models.TermInput, id int) (*models.Term, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить термин
// @Description Полностью перезаписывает статью глоссария по ID.
// @Tags Terms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID термина"
// @Param request body models.TermInput true "Новое представление статьи"
// @Success 200 {object} map[string]any "Успешное обновление термина"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON, ошибка валидации или дубликат термина"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Термин не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при обновлении термина"
// @Router /api/terms/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.term.update"
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

	var req models.TermInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid JSON data."))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	entry, err := h.service.Update(r.Context(), req, id)
	if err != nil {
		switch {
		case errors.Is(err, term.ErrEnglishTermRequired):
			log.Info("empty english term rejected")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("English Term is required."))
		case errors.Is(err, term.ErrFrenchTermRequired):
			log.Info("empty french term rejected")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("French Term is required."))
		case errors.Is(err, storage.ErrNotFound):
			log.Info("term not found", slog.Int("tid", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(fmt.Sprintf("Term with ID %d not found.", id)))
		case errors.Is(err, storage.ErrAlreadyExists):
			log.Info("duplicate term rejected", slog.String("english_term", req.EnglishTerm))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("This term already exists."))
		default:
			log.Error("failed to update term", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to update term"))
		}
		return
	}

	render.JSON(w, r, response.MessageWith("Term updated successfully!", "term", entry))
}
