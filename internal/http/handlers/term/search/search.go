// Package search реализует HTTP-обработчик поиска по каталогу терминов.
//
// Handler принимает параметры q и type из строки запроса, вызывает
// бизнес-логику поиска и возвращает найденные термины JSON-массивом.
// Пустой запрос — не ошибка: клиент получает пустой массив.
package search

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

// Handler управляет HTTP-запросами поиска терминов.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики поиска
}

// Service описывает интерфейс бизнес-логики поиска терминов.
type Service interface {
	Search(ctx context.Context, query, searchType string) ([]*models.Term, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Поиск терминов
// @Description Ищет термины по запросу q и типу поиска type (term, class, synonym, subdomain). Без type ищет по широкому набору полей. Пустой q возвращает пустой массив.
// @Tags Terms
// @Produce json
// @Param q query string false "Строка поиска"
// @Param type query string false "Тип поиска"
// @Success 200 {array} models.Term "Найденные термины"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при поиске"
// @Router /api/terms/search [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.term.search"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query().Get("q")
	searchType := r.URL.Query().Get("type")

	result, err := h.service.Search(r.Context(), query, searchType)
	if err != nil {
		log.Error("failed to search terms", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("An error occurred during search"))
		return
	}

	render.JSON(w, r, result)
}
