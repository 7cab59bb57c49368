package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // Драйвер PostgreSQL

	"github.com/avdeevsm/tasktracker/internal/handlers"
	appmiddleware "github.com/avdeevsm/tasktracker/internal/middleware"
	"github.com/avdeevsm/tasktracker/internal/repository"
	"github.com/avdeevsm/tasktracker/internal/services"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 30 * time.Second
)

// main - точка входа. Вызывает run и обрабатывает ошибку.
func main() {
	if err := run(); err != nil {
		log.Printf("Ошибка выполнения сервера: %v", err)
		os.Exit(1)
	}
}

// run содержит основную логику запуска сервера и возвращает ошибку.
func run() error {
	log.Println("Запуск сервера трекера задач...")

	cfg, err := parseFlags()
	if err != nil {
		return fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	// Инициализация зависимостей
	deps, err := setupDependencies(cfg)
	if err != nil {
		return fmt.Errorf("ошибка инициализации зависимостей: %w", err)
	}
	// Отложенное закрытие соединения с БД
	defer func() {
		if closeErr := deps.db.Close(); closeErr != nil {
			log.Printf("Ошибка закрытия соединения с БД: %v", closeErr)
		}
	}()

	// Настройка роутера
	r := setupRouter(deps.authHandler, deps.taskHandler, deps.tokenService)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	log.Printf("Запуск HTTP-сервера на порту %s...", cfg.Port)

	if err = server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ошибка запуска HTTP-сервера: %w", err)
	}
	return nil
}

// Структура для хранения инициализированных зависимостей.
type dependencies struct {
	db           *sqlx.DB
	tokenService services.TokenService
	authHandler  *handlers.AuthHandler
	taskHandler  *handlers.TaskHandler
}

// setupDependencies инициализирует и возвращает все необходимые зависимости сервера.
func setupDependencies(cfg *config) (*dependencies, error) {
	deps := &dependencies{}

	// 1. Подключение к БД
	db, err := repository.NewPostgresDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации БД: %w", err)
	}
	deps.db = db
	log.Println("Соединение с БД успешно установлено.")

	// 2. Применение миграций до начала обработки запросов
	if err = repository.RunMigrations(context.Background(), db); err != nil {
		if dbCloseErr := db.Close(); dbCloseErr != nil {
			log.Printf("Ошибка закрытия соединения с БД при ошибке миграций: %v", dbCloseErr)
		}
		return nil, fmt.Errorf("ошибка применения миграций: %w", err)
	}

	// 3. Создание репозиториев
	userRepo := repository.NewPostgresUserRepository(db)
	taskRepo := repository.NewPostgresTaskRepository(db)

	// 4. Создание сервисов
	// Секрет подписи и TTL токена приходят из конфигурации, не из констант
	deps.tokenService = services.NewJWTTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := services.NewAuthService(userRepo, deps.tokenService)
	taskService := services.NewTaskService(taskRepo)

	// 5. Создание обработчиков
	deps.authHandler = handlers.NewAuthHandler(authService)
	deps.taskHandler = handlers.NewTaskHandler(taskService)

	return deps, nil
}

// setupRouter настраивает и возвращает роутер chi.
func setupRouter(
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	tokenService services.TokenService,
) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// --- Маршруты --- //
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Сервер трекера задач работает\n"))
	})

	// Публичные маршруты (регистрация, вход)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
	})

	// Приватные маршруты (требуют аутентификации)
	r.Route("/tasks", func(r chi.Router) {
		// Применяем middleware аутентификации ко всей группе
		r.Use(appmiddleware.Authenticator(tokenService))

		r.Get("/", taskHandler.List)
		r.Post("/", taskHandler.Create)
		r.Patch("/{id}", taskHandler.UpdateCompletion)
		r.Delete("/{id}", taskHandler.Delete)
	})

	return r
}
