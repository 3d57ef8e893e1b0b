// Package logout реализует HTTP-обработчик выхода администратора.
//
// Токены не хранятся на сервере, поэтому выход сводится к подтверждению:
// клиент обязан отбросить токен на своей стороне.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/glotecht/glossary-api/internal/http/response"
)

// Handler управляет HTTP-запросами выхода.
type Handler struct {
	log *slog.Logger // Логгер для записи информации и ошибок
}

// New создает новый Handler с переданным логгером.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Выход администратора
// @Description Подтверждает выход. Клиент должен отбросить токен.
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]any "Подтверждение выхода"
// @Router /logout [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	log.Info("user logged out")
	render.JSON(w, r, response.Message("Logged out"))
}
