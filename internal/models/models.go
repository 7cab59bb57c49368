package models

import (
	"time"

	"github.com/google/uuid"
)

// User представляет пользователя системы.
// Тэги `db` используются для маппинга с полями БД с помощью sqlx.
// Тэги `json` используются для (де)сериализации JSON.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"` // Не отправляем хеш пароля в JSON
	CreatedAt    time.Time `db:"created_at" json:"-"`
	UpdatedAt    time.Time `db:"updated_at" json:"-"`
}

// Task представляет задачу пользователя.
// Идентификатор задачи - UUID, генерируется приложением при создании.
type Task struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Text      string    `db:"text" json:"text"`
	Completed bool      `db:"completed" json:"completed"`
	OwnerID   int64     `db:"owner_id" json:"ownerId"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}

// SignupRequest представляет тело запроса на регистрацию.
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest представляет тело запроса на вход.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserInfo представляет публичные данные пользователя в ответе на вход.
type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LoginResponse представляет тело ответа при успешном входе.
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// CreateTaskRequest представляет тело запроса на создание задачи.
type CreateTaskRequest struct {
	Text string `json:"text"`
}

// UpdateTaskRequest представляет тело запроса на изменение статуса задачи.
// Указатель позволяет отличить отсутствующее поле от явного false.
type UpdateTaskRequest struct {
	Completed *bool `json:"completed"`
}

// MessageResponse представляет тело ответа с информационным сообщением.
// Используется также для всех ошибок API: JSON с единственным полем message.
type MessageResponse struct {
	Message string `json:"message"`
}
