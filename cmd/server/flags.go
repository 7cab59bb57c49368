package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"
)

const (
	// Порт по умолчанию для HTTP-сервера.
	defaultServerPort = "8080"
	// Время жизни токена по умолчанию - сутки.
	defaultTokenTTL = 24 * time.Hour

	// Переменные окружения.
	envServerPort  = "SERVER_PORT"
	envDatabaseDSN = "DATABASE_DSN"
	envJWTSecret   = "JWT_SECRET" //nolint:gosec // Это имя переменной окружения, а не секрет
	envTokenTTL    = "TOKEN_TTL"
)

// config хранит конфигурацию сервера.
// Секрет подписи токенов живет только здесь: он читается один раз при старте
// и передается сервису токенов явной зависимостью.
type config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   string
	TokenTTL    time.Duration
}

// parseFlags разбирает флаги и переменные окружения, возвращает config или ошибку.
func parseFlags() (*config, error) {
	cfg := &config{}

	// Определяем флаги
	flag.StringVar(&cfg.Port, "port", "",
		fmt.Sprintf("Порт для запуска HTTP-сервера (env: %s, default: %s)", envServerPort, defaultServerPort))
	flag.StringVar(&cfg.DatabaseDSN, "database-dsn", "",
		fmt.Sprintf("Строка подключения к базе данных (env: %s)", envDatabaseDSN))
	flag.StringVar(&cfg.JWTSecret, "jwt-secret", "",
		fmt.Sprintf("Секретный ключ подписи JWT (env: %s)", envJWTSecret))
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", 0,
		fmt.Sprintf("Время жизни токена (env: %s, default: %s)", envTokenTTL, defaultTokenTTL))

	// Парсим флаги
	flag.Parse()

	// Применяем переменные окружения, если флаги не заданы
	if cfg.Port == "" {
		if value, ok := os.LookupEnv(envServerPort); ok {
			cfg.Port = value
		} else {
			cfg.Port = defaultServerPort
		}
	}
	if cfg.DatabaseDSN == "" {
		if value, ok := os.LookupEnv(envDatabaseDSN); ok {
			cfg.DatabaseDSN = value
		}
	}
	if cfg.JWTSecret == "" {
		if value, ok := os.LookupEnv(envJWTSecret); ok {
			cfg.JWTSecret = value
		}
	}
	if cfg.TokenTTL == 0 {
		if value, ok := os.LookupEnv(envTokenTTL); ok {
			ttl, err := time.ParseDuration(value)
			if err != nil {
				return nil, fmt.Errorf("неверный формат времени жизни токена в %s: %w", envTokenTTL, err)
			}
			cfg.TokenTTL = ttl
		} else {
			cfg.TokenTTL = defaultTokenTTL
		}
	}

	// Проверяем обязательные параметры
	if cfg.DatabaseDSN == "" {
		return nil, errors.New("не указана строка подключения к БД (--database-dsn или " + envDatabaseDSN + ")")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("не указан секретный ключ подписи JWT (--jwt-secret или " + envJWTSecret + ")")
	}

	return cfg, nil
}
