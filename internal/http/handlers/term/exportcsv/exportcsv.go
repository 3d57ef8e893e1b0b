// Package exportcsv реализует HTTP-обработчик выгрузки каталога в CSV.
//
// Ответ отдается как вложение с фиксированным именем файла. Пустой каталог
// выгружается строкой "No terms found" вместо таблицы.
package exportcsv

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/glotecht/glossary-api/internal/export"
	"github.com/glotecht/glossary-api/internal/http/response"
	"github.com/glotecht/glossary-api/internal/lib/sl"
	"github.com/glotecht/glossary-api/internal/models"
)

// Handler управляет HTTP-запросами CSV-выгрузки.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики каталога
}

// Service описывает интерфейс бизнес-логики для выгрузки каталога.
type Service interface {
	List(ctx context.Context) ([]*models.Term, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Выгрузка каталога в CSV
// @Description Возвращает все термины в CSV как вложение glotecht_terms.csv. Отсутствующие значения представлены пустыми ячейками.
// @Tags Export
// @Produce plain
// @Success 200 {string} string "CSV-таблица с терминами"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при выгрузке"
// @Router /api/terms/csv [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.term.exportcsv"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	terms, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list terms for export", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to export terms"))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")

	// Пустой каталог отдается обычным телом, без заголовка вложения.
	if len(terms) == 0 {
		log.Info("no terms to export")
		_, _ = w.Write([]byte(export.NoTermsBody))
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+export.CSVFilename+`"`)

	body, err := export.CSV(terms)
	if err != nil {
		log.Error("failed to encode csv", sl.Err(err))
		w.Header().Del("Content-Disposition")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to export terms"))
		return
	}

	log.Info("exported terms to csv", slog.Int("count", len(terms)))
	_, _ = w.Write(body)
}
