package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avdeevsm/tasktracker/internal/middleware"
	"github.com/avdeevsm/tasktracker/internal/models"
	"github.com/avdeevsm/tasktracker/internal/services"
)

// TaskHandler обрабатывает HTTP-запросы, связанные с задачами.
type TaskHandler struct {
	taskService services.TaskService
}

// NewTaskHandler создает новый экземпляр TaskHandler.
func NewTaskHandler(ts services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: ts}
}

// List обрабатывает GET запрос на получение всех задач текущего пользователя.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[TaskHandler:List] Не удалось получить userID из контекста")
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	log.Printf("[TaskHandler:List] Запрос списка задач от пользователя %d", userID)

	tasks, err := h.taskService.ListTasks(r.Context(), userID)
	if err != nil {
		log.Printf("[TaskHandler:List] Ошибка сервиса при получении задач пользователя %d: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, tasks)
}

// Create обрабатывает POST запрос на создание задачи.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[TaskHandler:Create] Не удалось получить userID из контекста")
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[TaskHandler:Create] Ошибка декодирования запроса: %v", err)
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	log.Printf("[TaskHandler:Create] Запрос на создание задачи от пользователя %d", userID)

	task, err := h.taskService.CreateTask(r.Context(), userID, req.Text)
	if err != nil {
		if errors.Is(err, services.ErrEmptyTaskText) {
			respondError(w, http.StatusBadRequest, "Текст задачи не может быть пустым")
			return
		}
		log.Printf("[TaskHandler:Create] Ошибка сервиса при создании задачи для пользователя %d: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusCreated, task)
}

// UpdateCompletion обрабатывает PATCH запрос на изменение статуса задачи.
func (h *TaskHandler) UpdateCompletion(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[TaskHandler:UpdateCompletion] Не удалось получить userID из контекста")
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	taskID, ok := taskIDFromURL(r)
	if !ok {
		// Синтаксически неверный ID неотличим от несуществующего
		respondError(w, http.StatusNotFound, "Задача не найдена")
		return
	}

	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[TaskHandler:UpdateCompletion] Ошибка декодирования запроса: %v", err)
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}
	if req.Completed == nil {
		respondError(w, http.StatusBadRequest, "Поле completed обязательно")
		return
	}

	log.Printf("[TaskHandler:UpdateCompletion] Пользователь %d меняет статус задачи %s на %t",
		userID, taskID, *req.Completed)

	task, err := h.taskService.UpdateTaskCompletion(r.Context(), taskID, userID, *req.Completed)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			respondError(w, http.StatusNotFound, "Задача не найдена")
			return
		}
		log.Printf("[TaskHandler:UpdateCompletion] Ошибка сервиса при обновлении задачи %s "+
			"пользователя %d: %v", taskID, userID, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// Delete обрабатывает DELETE запрос на удаление задачи.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[TaskHandler:Delete] Не удалось получить userID из контекста")
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	taskID, ok := taskIDFromURL(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Задача не найдена")
		return
	}

	log.Printf("[TaskHandler:Delete] Пользователь %d удаляет задачу %s", userID, taskID)

	err := h.taskService.DeleteTask(r.Context(), taskID, userID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			respondError(w, http.StatusNotFound, "Задача не найдена")
			return
		}
		log.Printf("[TaskHandler:Delete] Ошибка сервиса при удалении задачи %s пользователя %d: %v",
			taskID, userID, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// taskIDFromURL извлекает и разбирает UUID задачи из параметра маршрута.
func taskIDFromURL(r *http.Request) (uuid.UUID, bool) {
	idParam := chi.URLParam(r, "id")
	taskID, err := uuid.Parse(idParam)
	if err != nil {
		log.Printf("[TaskHandler] Неверный формат ID задачи в URL: %q", idParam)
		return uuid.Nil, false
	}
	return taskID, true
}
