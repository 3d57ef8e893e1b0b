// Package auth содержит бизнес-логику аутентификации: вход по email и паролю,
// выпуск JWT-токена и смена пароля с проверкой старого.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/glotecht/glossary-api/internal/lib/jwt"
	"github.com/glotecht/glossary-api/internal/lib/password"
	"github.com/glotecht/glossary-api/internal/models"
	"github.com/glotecht/glossary-api/internal/storage"
)

// ErrInvalidCredentials возвращается при неизвестном email или неверном пароле.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Repository определяет методы хранилища, необходимые для аутентификации.
type Repository interface {
	// GetUserByEmail возвращает пользователя по email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// ReadUser возвращает пользователя по ID.
	ReadUser(ctx context.Context, id int) (*models.User, error)
	// UpdateUserPassword заменяет хэш пароля пользователя.
	UpdateUserPassword(ctx context.Context, id int, passwordHash string) error
}

// Service реализует сценарии входа и смены пароля.
type Service struct {
	repo  Repository
	maker jwt.Maker
	log   *slog.Logger
}

// New создает новый Service аутентификации.
func New(repo Repository, maker jwt.Maker, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		maker: maker,
		log:   log,
	}
}

// Login проверяет email и пароль и возвращает подписанный токен доступа.
// Неизвестный email и неверный пароль неразличимы для клиента.
func (s *Service) Login(ctx context.Context, email, pass string) (string, error) {
	const op = "services.auth.Login"

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := password.CompareHash(user.PasswordHash, pass); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.maker.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user logged in", slog.String("username", user.Username))
	return token, nil
}

// UpdatePassword меняет пароль пользователя после проверки старого пароля.
func (s *Service) UpdatePassword(ctx context.Context, userID int, oldPass, newPass string) error {
	const op = "services.auth.UpdatePassword"

	user, err := s.repo.ReadUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := password.CompareHash(user.PasswordHash, oldPass); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := password.GetHash(newPass)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.UpdateUserPassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user changed password", slog.Int("user_id", userID))
	return nil
}
