package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/avdeevsm/tasktracker/internal/models"
)

// Тип для ключа контекста.
type contextKey string

// Ключ для хранения ID пользователя в контексте.
const UserIDKey contextKey = "userID"

// TokenVerifier определяет минимальный интерфейс проверки токена.
// Это позволит нам легко подменять реализацию (например, для тестов).
type TokenVerifier interface {
	Verify(tokenString string) (int64, error)
}

// Authenticator возвращает middleware, проверяющий Bearer-токен аутентификации.
// Применяется ко всем маршрутам задач; регистрация и вход его обходят.
func Authenticator(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Получаем заголовок Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Println("[AuthMiddleware] Заголовок Authorization отсутствует")
				writeUnauthorized(w, "Требуется аутентификация")
				return
			}

			// Проверяем формат "Bearer token"
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				log.Printf("[AuthMiddleware] Неверный формат заголовка Authorization: %s", authHeader)
				writeUnauthorized(w, "Неверный формат токена")
				return
			}

			// Проверяем токен (подпись, срок действия, структуру)
			userID, err := verifier.Verify(headerParts[1])
			if err != nil {
				log.Printf("[AuthMiddleware] Ошибка проверки токена: %v", err)
				writeUnauthorized(w, "Невалидный токен")
				return
			}

			// Добавляем UserID в контекст запроса
			ctx := context.WithValue(r.Context(), UserIDKey, userID)

			log.Printf("[AuthMiddleware] Пользователь %d успешно аутентифицирован", userID)

			// Передаем управление следующему обработчику с обновленным контекстом
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext извлекает UserID из контекста запроса.
// Возвращает ID пользователя и true, если ID найден, иначе 0 и false.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}

// writeUnauthorized отправляет ответ 401 с JSON-телом.
func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(models.MessageResponse{Message: message}); err != nil {
		log.Printf("[AuthMiddleware] Ошибка кодирования ответа 401: %v", err)
	}
}
