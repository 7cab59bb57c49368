package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService определяет интерфейс выдачи и проверки токенов доступа.
// Токен самодостаточен: сервер не хранит сессий, проверка выполняется
// только по подписи и сроку действия.
type TokenService interface {
	Issue(userID int64) (string, error)
	Verify(tokenString string) (int64, error)
}

// Структура для пользовательских данных в JWT (claims).
type jwtClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// Убедимся, что jwtTokenService удовлетворяет интерфейсу TokenService.
var _ TokenService = (*jwtTokenService)(nil)

type jwtTokenService struct {
	secretKey []byte
	tokenTTL  time.Duration
}

// NewJWTTokenService создает сервис токенов на основе JWT (HS256).
// Секретный ключ и время жизни токена задаются при старте сервера и
// передаются сюда явно, а не берутся из глобальных констант.
func NewJWTTokenService(secretKey string, tokenTTL time.Duration) TokenService {
	return &jwtTokenService{
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

// Issue создает и подписывает JWT токен для пользователя.
// Срок действия - абсолютная метка времени now + tokenTTL.
func (s *jwtTokenService) Issue(userID int64) (string, error) {
	claims := jwtClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)), // Время истечения
			IssuedAt:  jwt.NewNumericDate(time.Now()),                 // Время выдачи
			NotBefore: jwt.NewNumericDate(time.Now()),                 // Время, с которого токен валиден
			Issuer:    "tasktracker-server",                           // Источник токена
		},
	}

	// Создаем токен с нашими claims и методом подписи HS256
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Подписываем токен секретным ключом
	signedToken, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи JWT: %w", err)
	}

	return signedToken, nil
}

// Verify проверяет токен и возвращает ID пользователя из него.
// Любой дефект токена (неверная подпись, мусор вместо токена, истекший срок,
// неожиданный алгоритм подписи) дает одну и ту же ошибку ErrInvalidToken.
func (s *jwtTokenService) Verify(tokenString string) (int64, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Убеждаемся, что метод подписи - HMAC (HS256)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		// ParseWithClaims сам проверяет exp/nbf, сюда попадают и истекшие токены
		return 0, ErrInvalidToken
	}

	if !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}

// Кастомная ошибка сервиса токенов.
var ErrInvalidToken = errors.New("невалидный токен")
