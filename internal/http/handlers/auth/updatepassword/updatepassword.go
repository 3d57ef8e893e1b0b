// Package updatepassword реализует HTTP-обработчик смены пароля.
//
// Смена доступна только владельцу учётной записи: ID из пути должен
// совпадать с ID из токена. Старый пароль обязан пройти проверку.
package updatepassword

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/glotecht/glossary-api/internal/http/middlewarectx"
	"github.com/glotecht/glossary-api/internal/http/response"
	"github.com/glotecht/glossary-api/internal/lib/sl"
	"github.com/glotecht/glossary-api/internal/services/auth"
	"github.com/glotecht/glossary-api/internal/storage"
)

// Request — JSON-тело запроса на смену пароля.
type Request struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// Handler управляет HTTP-запросами смены пароля.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики аутентификации
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики смены пароля.
type Service interface {
	UpdatePassword(ctx context.Context, userID int, oldPassword, newPassword string) error
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
// @Summary Смена пароля
// @Description Меняет пароль учётной записи. Доступна только владельцу, старый пароль обязателен.
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Param request body Request true "Старый и новый пароли"
// @Success 200 {object} map[string]any "Пароль обновлён"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или отсутствующие поля"
// @Failure 401 {object} response.ErrorResponse "Старый пароль неверен"
// @Failure 403 {object} response.ErrorResponse "Попытка сменить чужой пароль"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при смене пароля"
// @Router /update_password/{id} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.updatepassword"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid user id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid user id"))
		return
	}

	callerID, ok := r.Context().Value(middlewarectx.UserID).(int)
	if !ok || callerID != id {
		log.Info("password change for another account rejected",
			slog.Int("caller_id", callerID), slog.Int("id", id))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("Unauthorized"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid JSON data."))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Les deux mots de passe sont requis"))
		return
	}

	if err := h.service.UpdatePassword(r.Context(), id, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			log.Info("wrong old password", slog.Int("id", id))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Le mot de passe actuel est incorrect"))
		case errors.Is(err, storage.ErrNotFound):
			log.Info("user not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Utilisateur non trouvé"))
		default:
			log.Error("failed to update password", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Une erreur s'est produite"))
		}
		return
	}

	render.JSON(w, r, response.Message("Password updated successfully!"))
}
