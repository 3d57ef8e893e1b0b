// Package exportxml реализует HTTP-обработчик выгрузки каталога в XML.
//
// Ответ отдается как вложение с фиксированным именем файла. Пустые и
// отсутствующие поля в XML не включаются.
package exportxml

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

// Handler управляет HTTP-запросами XML-выгрузки.
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
// @Summary Выгрузка каталога в XML
// @Description Возвращает все термины в XML как вложение glotecht_terms.xml. Пустые поля опускаются.
// @Tags Export
// @Produce xml
// @Success 200 {string} string "XML-документ с терминами"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при выгрузке"
// @Router /api/terms/xml [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.term.exportxml"
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

	body := export.XML(terms)
	log.Info("exported terms to xml", slog.Int("count", len(terms)))

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.XMLFilename+`"`)
	_, _ = w.Write([]byte(body))
}
