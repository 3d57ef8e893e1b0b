// Package root реализует HTTP-обработчик корневой точки API:
// двуязычное приветственное сообщение.
package root

import (
	"net/http"

	"github.com/go-chi/render"
)

// Welcome — статичное описание глоссария на обоих языках.
type Welcome struct {
	EN string `json:"EN"`
	FR string `json:"FR"`
}

// Handler управляет HTTP-запросами корневой точки API.
type Handler struct{}

// New создает новый Handler.
func New() *Handler {
	return &Handler{}
}

// ServeHTTP godoc
// @Summary Приветствие API
// @Description Возвращает статичное двуязычное описание глоссария.
// @Tags API
// @Produce json
// @Success 200 {object} Welcome "Приветственное сообщение"
// @Router /api [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, Welcome{
		EN: "English-French Glossary for Disruptive Technologies (Big Data, AI, Blockchain).",
		FR: "Glossaire Anglais-Francais des technologies transformatrices (Big Data, IA, blockchain).",
	})
}
