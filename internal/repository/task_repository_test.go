package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeevsm/tasktracker/internal/repository"
)

// Вспомогательная функция для создания мока БД и репозитория задач.
func setupTaskRepoMock(t *testing.T) (repository.TaskRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := repository.NewPostgresTaskRepository(sqlxDB)
	return repo, mock
}

func taskColumns() []string {
	return []string{"id", "text", "completed", "owner_id", "created_at"}
}

func TestNewPostgresTaskRepository(t *testing.T) {
	repo := repository.NewPostgresTaskRepository(nil)
	assert.NotNil(t, repo)
}

func TestCreateTask(t *testing.T) {
	ownerID := int64(7)
	now := time.Now()
	insertQuery := regexp.QuoteMeta(`INSERT INTO tasks (id, text, owner_id) VALUES ($1, $2, $3)
	          RETURNING id, text, completed, owner_id, created_at`)

	t.Run("Успешное создание", func(t *testing.T) {
		repo, mock := setupTaskRepoMock(t)

		// ID генерируется внутри репозитория, поэтому матчим любой аргумент
		generatedID := uuid.New()
		mock.ExpectQuery(insertQuery).
			WithArgs(sqlmock.AnyArg(), "купить молоко", ownerID).
			WillReturnRows(sqlmock.NewRows(taskColumns()).
				AddRow(generatedID.String(), "купить молоко", false, ownerID, now))

		task, err := repo.CreateTask(context.Background(), ownerID, "купить молоко")

		require.NoError(t, err)
		require.NotNil(t, task)
		assert.Equal(t, "купить молоко", task.Text)
		assert.False(t, task.Completed) // Новая задача всегда не выполнена
		assert.Equal(t, ownerID, task.OwnerID)
		assert.NotEqual(t, uuid.Nil, task.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		repo, mock := setupTaskRepoMock(t)

		mock.ExpectQuery(insertQuery).
			WithArgs(sqlmock.AnyArg(), "текст", ownerID).
			WillReturnError(errors.New("database error"))

		task, err := repo.CreateTask(context.Background(), ownerID, "текст")

		require.Error(t, err)
		assert.Nil(t, task)
		assert.Contains(t, err.Error(), "ошибка выполнения запроса")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListTasksByOwner(t *testing.T) {
	ownerID := int64(7)
	now := time.Now()
	selectQuery := regexp.QuoteMeta(`SELECT id, text, completed, owner_id, created_at FROM tasks
	          WHERE owner_id=$1 ORDER BY created_at, id`)

	t.Run("Задачи возвращаются в порядке создания", func(t *testing.T) {
		repo, mock := setupTaskRepoMock(t)

		firstID := uuid.New()
		secondID := uuid.New()
		rows := sqlmock.NewRows(taskColumns()).
			AddRow(firstID.String(), "первая", false, ownerID, now).
			AddRow(secondID.String(), "вторая", true, ownerID, now.Add(time.Minute))
		mock.ExpectQuery(selectQuery).WithArgs(ownerID).WillReturnRows(rows)

		tasks, err := repo.ListTasksByOwner(context.Background(), ownerID)

		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, firstID, tasks[0].ID)
		assert.Equal(t, secondID, tasks[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Нет задач - пустой срез, не nil", func(t *testing.T) {
		repo, mock := setupTaskRepoMock(t)

		mock.ExpectQuery(selectQuery).WithArgs(ownerID).WillReturnRows(sqlmock.NewRows(taskColumns()))

		tasks, err := repo.ListTasksByOwner(context.Background(), ownerID)

		require.NoError(t, err)
		assert.NotNil(t, tasks) // Клиент должен получить [], а не null
		assert.Empty(t, tasks)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		repo, mock := setupTaskRepoMock(t)

		mock.ExpectQuery(selectQuery).WithArgs(ownerID).WillReturnError(errors.New("database error"))

		tasks, err := repo.ListTasksByOwner(context.Background(), ownerID)

		require.Error(t, err)
		assert.Nil(t, tasks)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateTaskCompletion(t *testing.T) {
	ownerID := int64(7)
	taskID := uuid.New()
	now := time.Now()
	updateQuery := regexp.QuoteMeta(`UPDATE tasks SET completed=$1 WHERE id=$2 AND owner_id=$3
	          RETURNING id, text, completed, owner_id, created_at`)

	t.Run("Успешное обновление", func(t *testing.T) {
		repo, mock := setupTaskRepoMock(t)

		rows := sqlmock.NewRows(taskColumns()).AddRow(taskID.String(), "текст", true, ownerID, now)
		mock.ExpectQuery(updateQuery).WithArgs(true, taskID, ownerID).WillReturnRows(rows)

		task, err := repo.UpdateTaskCompletion(context.Background(), taskID, ownerID, true)

		require.NoError(t, err)
		require.NotNil(t, task)
		assert.True(t, task.Completed)
		assert.Equal(t, taskID, task.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Чужая или несуществующая задача", func(t *testing.T) {
		repo, mock := setupTaskRepoMock(t)

		// WHERE по id и owner_id не нашел строк - одинаково для чужой и отсутствующей задачи
		mock.ExpectQuery(updateQuery).WithArgs(false, taskID, ownerID).WillReturnError(sql.ErrNoRows)

		task, err := repo.UpdateTaskCompletion(context.Background(), taskID, ownerID, false)

		require.Error(t, err)
		assert.Nil(t, task)
		assert.ErrorIs(t, err, repository.ErrTaskNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		repo, mock := setupTaskRepoMock(t)

		mock.ExpectQuery(updateQuery).WithArgs(true, taskID, ownerID).WillReturnError(errors.New("database error"))

		task, err := repo.UpdateTaskCompletion(context.Background(), taskID, ownerID, true)

		require.Error(t, err)
		assert.Nil(t, task)
		assert.NotErrorIs(t, err, repository.ErrTaskNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteTask(t *testing.T) {
	ownerID := int64(7)
	taskID := uuid.New()
	deleteQuery := regexp.QuoteMeta(`DELETE FROM tasks WHERE id=$1 AND owner_id=$2`)

	t.Run("Успешное удаление", func(t *testing.T) {
		repo, mock := setupTaskRepoMock(t)

		mock.ExpectExec(deleteQuery).WithArgs(taskID, ownerID).WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteTask(context.Background(), taskID, ownerID)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Чужая или несуществующая задача", func(t *testing.T) {
		repo, mock := setupTaskRepoMock(t)

		mock.ExpectExec(deleteQuery).WithArgs(taskID, ownerID).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteTask(context.Background(), taskID, ownerID)

		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrTaskNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		repo, mock := setupTaskRepoMock(t)

		mock.ExpectExec(deleteQuery).WithArgs(taskID, ownerID).WillReturnError(errors.New("database error"))

		err := repo.DeleteTask(context.Background(), taskID, ownerID)

		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrTaskNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
