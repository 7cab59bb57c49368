package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avdeevsm/tasktracker/internal/handlers"
	"github.com/avdeevsm/tasktracker/internal/models"
	"github.com/avdeevsm/tasktracker/internal/services"
)

// --- Mock AuthService --- //

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	args := m.Called(ctx, username, password)
	var user *models.User
	if args.Get(1) != nil {
		user = args.Get(1).(*models.User)
	}
	return args.String(0), user, args.Error(2)
}

// --- Tests --- //

func TestNewAuthHandler(t *testing.T) {
	mockService := new(MockAuthService)
	h := handlers.NewAuthHandler(mockService)
	assert.NotNil(t, h)
}

// Вспомогательная функция для создания роутера с обработчиком.
func setupAuthRouter(h *handlers.AuthHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/auth/signup", h.Signup)
	r.Post("/auth/login", h.Login)
	return r
}

func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		mockUsername    string
		mockPassword    string
		mockReturnError error
		expectedStatus  int
		expectedBody    string // Проверяем подстроку в теле ответа
	}{
		{
			name:            "Успешная регистрация",
			body:            `{"username": "testuser", "password": "password123"}`,
			mockUsername:    "testuser",
			mockPassword:    "password123",
			mockReturnError: nil,
			expectedStatus:  http.StatusCreated,
			expectedBody:    "Пользователь успешно зарегистрирован",
		},
		{
			name:           "Невалидный JSON",
			body:           `{"username": "testuser", "password": "password123"`, // Сломанный JSON
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Неверный формат запроса",
		},
		{
			name:           "Пустой username",
			body:           `{"username": "", "password": "password123"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Имя пользователя и пароль обязательны",
		},
		{
			name:           "Пустой password",
			body:           `{"username": "testuser", "password": ""}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Имя пользователя и пароль обязательны",
		},
		{
			name:            "Имя пользователя занято",
			body:            `{"username": "existinguser", "password": "password123"}`,
			mockUsername:    "existinguser",
			mockPassword:    "password123",
			mockReturnError: services.ErrUsernameTaken, // Ошибка от сервиса
			expectedStatus:  http.StatusBadRequest,
			expectedBody:    "Пользователь с таким именем уже существует",
		},
		{
			name:            "Внутренняя ошибка сервера",
			body:            `{"username": "erroruser", "password": "password123"}`,
			mockUsername:    "erroruser",
			mockPassword:    "password123",
			mockReturnError: errors.New("some internal error"), // Другая ошибка
			expectedStatus:  http.StatusInternalServerError,
			expectedBody:    "Внутренняя ошибка сервера",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			h := handlers.NewAuthHandler(mockService)
			r := setupAuthRouter(h)

			// Настраиваем мок только если ожидается вызов сервиса
			if tt.mockUsername != "" || tt.mockPassword != "" {
				mockService.On("Register", mock.Anything, tt.mockUsername, tt.mockPassword).
					Return(tt.mockReturnError).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			// Все ответы, включая ошибки, в формате JSON
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	user := &models.User{ID: 1, Username: "testuser", PasswordHash: "hash"}

	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *MockAuthService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Успешный вход",
			body: `{"username": "testuser", "password": "password123"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "testuser", "password123").
					Return("signed-token", user, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "signed-token",
		},
		{
			name:           "Невалидный JSON",
			body:           `{"username": "testuser"`,
			mockSetup:      func(_ *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Неверный формат запроса",
		},
		{
			name:           "Пустые поля",
			body:           `{"username": "", "password": ""}`,
			mockSetup:      func(_ *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Имя пользователя и пароль обязательны",
		},
		{
			name: "Неверные учетные данные",
			body: `{"username": "testuser", "password": "wrong"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "testuser", "wrong").
					Return("", nil, services.ErrInvalidCredentials).Once()
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Неверные учетные данные",
		},
		{
			name: "Внутренняя ошибка сервера",
			body: `{"username": "testuser", "password": "password123"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "testuser", "password123").
					Return("", nil, errors.New("some internal error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Внутренняя ошибка сервера",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			tt.mockSetup(mockService)
			h := handlers.NewAuthHandler(mockService)
			r := setupAuthRouter(h)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}

// Успешный вход возвращает и токен, и публичные данные пользователя.
func TestAuthHandler_LoginResponseShape(t *testing.T) {
	user := &models.User{ID: 7, Username: "alice", PasswordHash: "hash"}
	mockService := new(MockAuthService)
	mockService.On("Login", mock.Anything, "alice", "pw123").
		Return("signed-token", user, nil).Once()

	h := handlers.NewAuthHandler(mockService)
	r := setupAuthRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"username": "alice", "password": "pw123"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, int64(7), resp.User.ID)
	assert.Equal(t, "alice", resp.User.Username)
	// Хеш пароля не должен попадать в ответ
	assert.NotContains(t, rr.Body.String(), "hash")

	mockService.AssertExpectations(t)
}
