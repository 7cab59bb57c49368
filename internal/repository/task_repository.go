package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avdeevsm/tasktracker/internal/models"
)

// TaskRepository определяет методы для работы с задачами в хранилище.
// Все операции чтения и изменения привязаны к владельцу задачи: задача,
// созданная одним пользователем, недоступна другому, даже если известен её ID.
type TaskRepository interface {
	CreateTask(ctx context.Context, ownerID int64, text string) (*models.Task, error)
	ListTasksByOwner(ctx context.Context, ownerID int64) ([]models.Task, error)
	UpdateTaskCompletion(ctx context.Context, taskID uuid.UUID, ownerID int64, completed bool) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID, ownerID int64) error
}

// postgresTaskRepository реализует TaskRepository для PostgreSQL.
type postgresTaskRepository struct {
	db *sqlx.DB
}

// NewPostgresTaskRepository создает новый экземпляр репозитория задач для PostgreSQL.
func NewPostgresTaskRepository(db *sqlx.DB) TaskRepository {
	return &postgresTaskRepository{db: db}
}

// CreateTask создает новую задачу для пользователя.
// ID задачи генерируется приложением (UUID), completed выставляется БД в false.
func (r *postgresTaskRepository) CreateTask(ctx context.Context, ownerID int64, text string) (*models.Task, error) {
	query := `INSERT INTO tasks (id, text, owner_id) VALUES ($1, $2, $3)
	          RETURNING id, text, completed, owner_id, created_at`
	var task models.Task

	taskID := uuid.New()
	err := r.db.QueryRowxContext(ctx, query, taskID, text, ownerID).StructScan(&task)
	if err != nil {
		log.Printf("[TaskRepo] Ошибка при создании задачи для пользователя ID %d: %v", ownerID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на создание задачи: %w", err)
	}

	log.Printf("[TaskRepo] Задача %s для пользователя ID %d успешно создана", task.ID, ownerID)
	return &task, nil
}

// ListTasksByOwner возвращает все задачи пользователя в порядке их создания.
func (r *postgresTaskRepository) ListTasksByOwner(ctx context.Context, ownerID int64) ([]models.Task, error) {
	query := `SELECT id, text, completed, owner_id, created_at FROM tasks
	          WHERE owner_id=$1 ORDER BY created_at, id`
	tasks := make([]models.Task, 0)

	err := r.db.SelectContext(ctx, &tasks, query, ownerID)
	if err != nil {
		log.Printf("[TaskRepo] Ошибка при получении списка задач пользователя ID %d: %v", ownerID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение списка задач: %w", err)
	}

	log.Printf("[TaskRepo] Найдено задач для пользователя ID %d: %d", ownerID, len(tasks))
	return tasks, nil
}

// UpdateTaskCompletion изменяет статус выполнения задачи.
// Условие WHERE включает и ID задачи, и владельца, поэтому чужая задача и
// несуществующая задача неразличимы для вызывающего - обе дают ErrTaskNotFound.
func (r *postgresTaskRepository) UpdateTaskCompletion(
	ctx context.Context,
	taskID uuid.UUID,
	ownerID int64,
	completed bool,
) (*models.Task, error) {
	query := `UPDATE tasks SET completed=$1 WHERE id=$2 AND owner_id=$3
	          RETURNING id, text, completed, owner_id, created_at`
	var task models.Task

	err := r.db.QueryRowxContext(ctx, query, completed, taskID, ownerID).StructScan(&task)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[TaskRepo] Задача %s для пользователя ID %d не найдена", taskID, ownerID)
			return nil, ErrTaskNotFound
		}
		log.Printf("[TaskRepo] Ошибка при обновлении задачи %s пользователя ID %d: %v", taskID, ownerID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на обновление задачи: %w", err)
	}

	log.Printf("[TaskRepo] Задача %s пользователя ID %d обновлена (completed=%t)", task.ID, ownerID, task.Completed)
	return &task, nil
}

// DeleteTask удаляет задачу пользователя.
// Семантика владения та же, что и у UpdateTaskCompletion.
func (r *postgresTaskRepository) DeleteTask(ctx context.Context, taskID uuid.UUID, ownerID int64) error {
	query := `DELETE FROM tasks WHERE id=$1 AND owner_id=$2`

	result, err := r.db.ExecContext(ctx, query, taskID, ownerID)
	if err != nil {
		log.Printf("[TaskRepo] Ошибка при удалении задачи %s пользователя ID %d: %v", taskID, ownerID, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление задачи: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("[TaskRepo] Ошибка получения числа удаленных строк для задачи %s: %v", taskID, err)
		return fmt.Errorf("ошибка получения результата удаления задачи: %w", err)
	}
	if rowsAffected == 0 {
		log.Printf("[TaskRepo] Задача %s для пользователя ID %d не найдена", taskID, ownerID)
		return ErrTaskNotFound
	}

	log.Printf("[TaskRepo] Задача %s пользователя ID %d успешно удалена", taskID, ownerID)
	return nil
}

// Кастомная ошибка репозитория задач.
var (
	ErrTaskNotFound = errors.New("задача не найдена")
)
