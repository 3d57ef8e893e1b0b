// Package create реализует HTTP-обработчик создания нового термина.
//
// Handler принимает JSON-запрос с полями статьи, валидирует обязательные
// поля, вызывает бизнес-логику и возвращает созданную запись вместе с
// подтверждающим сообщением.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/glotecht/glossary-api/internal/http/response"
	"github.com/glotecht/glossary-api/internal/lib/sl"
	"github.com/glotecht/glossary-api/internal/models"
	"github.com/glotecht/glossary-api/internal/services/term"
	"github.com/glotecht/glossary-api/internal/storage"
)

// Handler управляет HTTP-запросами создания термина.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики терминов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания термина.
type Service interface {
	Create(ctx context.Context, req models.TermInput) (*models.Term, error)
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
// @Summary Создать новый термин
// @Description Создает новую статью глоссария. Обязательны оба термина и оба домена.
// @Tags Terms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.TermInput true "Данные новой статьи"
// @Success 201 {object} map[string]any "Успешное создание термина"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON, ошибка валидации или дубликат термина"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании термина"
// @Router /api/terms [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.term.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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

	entry, err := h.service.Create(r.Context(), req)
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
		case errors.Is(err, storage.ErrAlreadyExists):
			log.Info("duplicate term rejected", slog.String("english_term", req.EnglishTerm))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("This term already exists."))
		default:
			log.Error("failed to create term", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to create term"))
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.MessageWith("Term created successfully!", "term", entry))
}
