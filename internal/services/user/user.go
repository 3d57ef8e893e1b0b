// Package user содержит бизнес-логику управления учётными записями
// администраторов: создание, чтение, обновление и удаление.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/glotecht/glossary-api/internal/lib/password"
	"github.com/glotecht/glossary-api/internal/models"
)

// Repository определяет методы для работы с пользователями в хранилище.
type Repository interface {
	// CreateUser добавляет пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (int, error)
	// ReadUser возвращает пользователя по ID.
	ReadUser(ctx context.Context, id int) (*models.User, error)
	// ListUsers возвращает всех пользователей, упорядоченных по ID.
	ListUsers(ctx context.Context) ([]*models.User, error)
	// UpdateUser перезаписывает username, email и хэш пароля по ID.
	UpdateUser(ctx context.Context, user models.User, id int) error
	// RemoveUser удаляет пользователя по ID.
	RemoveUser(ctx context.Context, id int) error
}

// Service реализует бизнес-логику учётных записей.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый Service поверх репозитория пользователей.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Create создает учётную запись, хэшируя пароль, и возвращает созданную запись.
func (s *Service) Create(ctx context.Context, req models.UserInput) (*models.User, error) {
	const op = "services.user.Create"

	hash, err := password.GetHash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entry := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	id, err := s.repo.CreateUser(ctx, entry)
	if err != nil {
		return nil, err
	}

	s.log.Info("created new user", slog.Int("id", id), slog.String("username", entry.Username))
	entry.ID = id
	return &entry, nil
}

// Read возвращает пользователя по ID.
func (s *Service) Read(ctx context.Context, id int) (*models.User, error) {
	return s.repo.ReadUser(ctx, id)
}

// List возвращает всех пользователей.
func (s *Service) List(ctx context.Context) ([]*models.User, error) {
	result, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []*models.User{}
	}
	return result, nil
}

// Update перезаписывает учётную запись по ID, хэшируя новый пароль.
func (s *Service) Update(ctx context.Context, req models.UserInput, id int) (*models.User, error) {
	const op = "services.user.Update"

	hash, err := password.GetHash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entry := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.repo.UpdateUser(ctx, entry, id); err != nil {
		return nil, err
	}

	s.log.Info("updated user", slog.Int("id", id))
	entry.ID = id
	return &entry, nil
}

// Remove удаляет учётную запись по ID.
func (s *Service) Remove(ctx context.Context, id int) error {
	if err := s.repo.RemoveUser(ctx, id); err != nil {
		return err
	}
	s.log.Info("deleted user", slog.Int("id", id))
	return nil
}
