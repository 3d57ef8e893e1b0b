// Package main содержит утилиту первичного создания администратора.
//
// Утилита подключается к базе по той же конфигурации, что и сервис,
// и создает учётную запись с указанными именем, email и паролем.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/glotecht/glossary-api/internal/config"
	"github.com/glotecht/glossary-api/internal/lib/password"
	"github.com/glotecht/glossary-api/internal/migrations"
	"github.com/glotecht/glossary-api/internal/models"
	"github.com/glotecht/glossary-api/internal/storage"
)

func main() {
	username := flag.String("username", "", "имя администратора")
	email := flag.String("email", "", "email администратора")
	pass := flag.String("password", "", "пароль администратора")
	flag.Parse()

	if *username == "" || *email == "" || *pass == "" {
		log.Fatal("flags -username, -email and -password are required")
	}

	cfg := config.MustLoad()

	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}
	defer db.DB.Close()

	if err := migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	hash, err := password.GetHash(*pass)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id, err := db.CreateUser(ctx, models.User{
		Username:     *username,
		Email:        *email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			log.Fatal("Superuser already exists")
		}
		log.Fatalf("failed to create user: %v", err)
	}

	log.Printf("Superuser created successfully, id=%d", id)
}
