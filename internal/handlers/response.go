package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/avdeevsm/tasktracker/internal/models"
)

// respondJSON сериализует payload в JSON и отправляет его с указанным статусом.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Статус клиенту уже отправлен, остается только залогировать
		log.Printf("[Handlers] Ошибка кодирования JSON-ответа: %v", err)
	}
}

// respondError отправляет JSON-ответ об ошибке с полем message.
// Все ошибки API имеют одинаковую форму тела.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.MessageResponse{Message: message})
}
