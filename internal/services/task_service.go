package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/avdeevsm/tasktracker/internal/models"
	"github.com/avdeevsm/tasktracker/internal/repository"
)

// TaskService определяет интерфейс для сервиса задач.
// Все операции принимают ownerID - идентификатор аутентифицированного
// пользователя из контекста запроса.
type TaskService interface {
	CreateTask(ctx context.Context, ownerID int64, text string) (*models.Task, error)
	ListTasks(ctx context.Context, ownerID int64) ([]models.Task, error)
	UpdateTaskCompletion(ctx context.Context, taskID uuid.UUID, ownerID int64, completed bool) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID, ownerID int64) error
}

// Убедимся, что taskService удовлетворяет интерфейсу TaskService.
var _ TaskService = (*taskService)(nil)

type taskService struct {
	taskRepo repository.TaskRepository // Зависимость от репозитория задач
}

// NewTaskService создает новый экземпляр сервиса задач.
func NewTaskService(taskRepo repository.TaskRepository) TaskService {
	return &taskService{taskRepo: taskRepo}
}

// CreateTask создает новую задачу для пользователя.
// Текст предварительно очищается от пробелов; пустой текст - ошибка валидации,
// такая задача в хранилище не попадает.
func (s *taskService) CreateTask(ctx context.Context, ownerID int64, text string) (*models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		log.Printf("[TaskService] Отклонено создание задачи с пустым текстом (пользователь ID %d)", ownerID)
		return nil, ErrEmptyTaskText
	}

	task, err := s.taskRepo.CreateTask(ctx, ownerID, text)
	if err != nil {
		log.Printf("[TaskService] Ошибка репозитория при создании задачи для пользователя ID %d: %v", ownerID, err)
		return nil, errors.New("внутренняя ошибка сервера при создании задачи")
	}

	return task, nil
}

// ListTasks возвращает все задачи пользователя в порядке создания.
func (s *taskService) ListTasks(ctx context.Context, ownerID int64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListTasksByOwner(ctx, ownerID)
	if err != nil {
		log.Printf("[TaskService] Ошибка репозитория при получении задач пользователя ID %d: %v", ownerID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении списка задач")
	}

	return tasks, nil
}

// UpdateTaskCompletion изменяет статус выполнения задачи пользователя.
func (s *taskService) UpdateTaskCompletion(
	ctx context.Context,
	taskID uuid.UUID,
	ownerID int64,
	completed bool,
) (*models.Task, error) {
	task, err := s.taskRepo.UpdateTaskCompletion(ctx, taskID, ownerID, completed)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		log.Printf("[TaskService] Ошибка репозитория при обновлении задачи %s пользователя ID %d: %v",
			taskID, ownerID, err)
		return nil, errors.New("внутренняя ошибка сервера при обновлении задачи")
	}

	return task, nil
}

// DeleteTask удаляет задачу пользователя.
func (s *taskService) DeleteTask(ctx context.Context, taskID uuid.UUID, ownerID int64) error {
	err := s.taskRepo.DeleteTask(ctx, taskID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		log.Printf("[TaskService] Ошибка репозитория при удалении задачи %s пользователя ID %d: %v",
			taskID, ownerID, err)
		return errors.New("внутренняя ошибка сервера при удалении задачи")
	}

	return nil
}

// Кастомные ошибки сервиса задач.
var (
	ErrEmptyTaskText = errors.New("текст задачи не может быть пустым")
	ErrTaskNotFound  = errors.New("задача не найдена")
)
