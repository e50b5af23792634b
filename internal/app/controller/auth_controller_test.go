package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/internal/app/repository"
	"github.com/chocolog/chocolog-backend/internal/app/service"
	"github.com/chocolog/chocolog-backend/internal/db"
	"github.com/chocolog/chocolog-backend/internal/middleware"
	"github.com/chocolog/chocolog-backend/pkg/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthControllerTest(t *testing.T) (*gin.Engine, service.AuthService) {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB(t)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(testDB)
	authService := service.NewAuthService(
		userRepo,
		"test-secret",
		15*time.Minute,
		7*24*time.Hour,
	)

	ctrl := NewAuthController(authService, 15*time.Minute)
	authMiddleware := middleware.NewAuthMiddleware("test-secret")

	router := gin.New()
	router.POST("/register", ctrl.Register)
	router.POST("/login", ctrl.Login)
	router.POST("/logout", authMiddleware.Authenticate(), ctrl.Logout)
	router.GET("/me", authMiddleware.Authenticate(), ctrl.GetMe)
	router.PUT("/me", authMiddleware.Authenticate(), ctrl.UpdateMe)

	return router, authService
}

func TestAuthController_Register_Success(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	reqBody := model.RegisterRequest{
		Email:    "test@example.com",
		Password: "password123",
		Name:     "Test User",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "User registered successfully", response["message"])
	assert.NotNil(t, response["user"])
	assert.NotNil(t, response["tokens"])

	// Password hash never leaks into the response
	userMap := response["user"].(map[string]interface{})
	assert.NotContains(t, userMap, "password_hash")
	assert.Equal(t, "USER", userMap["role"])
}

func TestAuthController_Register_InvalidInput(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	tests := []struct {
		name    string
		reqBody model.RegisterRequest
	}{
		{
			name: "Invalid email",
			reqBody: model.RegisterRequest{
				Email:    "invalid-email",
				Password: "password123",
				Name:     "Test User",
			},
		},
		{
			name: "Short password",
			reqBody: model.RegisterRequest{
				Email:    "test@example.com",
				Password: "123",
				Name:     "Test User",
			},
		},
		{
			name: "Missing name",
			reqBody: model.RegisterRequest{
				Email:    "test@example.com",
				Password: "password123",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "INVALID_INPUT")
		})
	}
}

func TestAuthController_Register_DuplicateEmail(t *testing.T) {
	router, authService := setupAuthControllerTest(t)

	_, _, err := authService.Register("test@example.com", "password123", "Test User")
	require.NoError(t, err)

	reqBody := model.RegisterRequest{
		Email:    "test@example.com",
		Password: "password456",
		Name:     "Another User",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "USER_EXISTS")
}

func TestAuthController_Login(t *testing.T) {
	router, authService := setupAuthControllerTest(t)

	_, _, err := authService.Register("test@example.com", "password123", "Test User")
	require.NoError(t, err)

	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Valid credentials",
			email:          "test@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Wrong password",
			email:          "test@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:           "Unknown email",
			email:          "nobody@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(model.LoginRequest{Email: tt.email, Password: tt.password})
			req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Contains(t, w.Body.String(), tt.expectedCode)
			}
		})
	}
}

func TestAuthController_GetMe(t *testing.T) {
	router, authService := setupAuthControllerTest(t)

	user, tokens, err := authService.Register("test@example.com", "password123", "Test User")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	userMap := response["user"].(map[string]interface{})
	assert.Equal(t, user.Email, userMap["email"])
	assert.Equal(t, user.Name, userMap["name"])
}

func TestAuthController_GetMe_Unauthorized(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	req := httptest.NewRequest("GET", "/me", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestAuthController_UpdateMe(t *testing.T) {
	router, authService := setupAuthControllerTest(t)

	_, tokens, err := authService.Register("test@example.com", "password123", "Test User")
	require.NoError(t, err)
	_, _, err = authService.Register("taken@example.com", "password123", "Other User")
	require.NoError(t, err)

	newName := "Renamed"
	body, _ := json.Marshal(model.UpdateProfileRequest{Name: &newName})
	req := httptest.NewRequest("PUT", "/me", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Renamed")

	// Switching to a taken email is a conflict
	taken := "taken@example.com"
	body, _ = json.Marshal(model.UpdateProfileRequest{Email: &taken})
	req = httptest.NewRequest("PUT", "/me", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	w = httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "USER_EXISTS")
}

func TestAuthController_Logout(t *testing.T) {
	router, authService := setupAuthControllerTest(t)

	_, tokens, err := authService.Register("test@example.com", "password123", "Test User")
	require.NoError(t, err)

	// Without redis the blacklist is a no-op; the endpoint still succeeds
	req := httptest.NewRequest("POST", "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logged out successfully")
}

func TestAuthController_TokensAreDifferent(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	reqBody := model.RegisterRequest{
		Email:    "test@example.com",
		Password: "password123",
		Name:     "Test User",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	tokens := response["tokens"].(map[string]interface{})
	accessToken := tokens["access_token"].(string)
	refreshToken := tokens["refresh_token"].(string)

	assert.NotEqual(t, accessToken, refreshToken)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	claims, err := util.ValidateToken(accessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, "USER", claims.Role)
}
