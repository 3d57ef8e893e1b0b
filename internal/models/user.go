package models

// User представляет учётную запись администратора глоссария.
// Хэш пароля никогда не сериализуется в ответы API.
type User struct {
	ID           int    `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
}

// UserInput используется для приёма данных из JSON-запроса на создание
// или обновление пользователя. Пароль приходит в открытом виде и
// хэшируется на уровне бизнес-логики.
type UserInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
