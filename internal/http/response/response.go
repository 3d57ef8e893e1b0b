// Package response задаёт формы JSON-ответов API.
//
// Ошибки всегда отдаются как {"error": "<сообщение>"}, успешные мутации —
// как {"message": "...", "<entity>": {...}}. Списки сериализуются без
// обёртки, как голые JSON-массивы.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// ErrorResponse — тело любого ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error создает тело ответа с сообщением об ошибке.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// ValidationError собирает человекочитаемое сообщение из ошибок валидатора.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var msgs []string

	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is a required field", field))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field %s is not a valid email", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("field %s is too short", field))
		case "max":
			msgs = append(msgs, fmt.Sprintf("field %s is too long", field))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", field))
		}
	}

	return Error(strings.Join(msgs, ", "))
}

// Message создает тело успешного ответа, состоящее только из сообщения.
func Message(msg string) map[string]any {
	return map[string]any{"message": msg}
}

// MessageWith создает тело успешной мутации: сообщение плюс затронутая
// сущность под её собственным ключом.
func MessageWith(msg, key string, v any) map[string]any {
	return map[string]any{
		"message": msg,
		key:       v,
	}
}
