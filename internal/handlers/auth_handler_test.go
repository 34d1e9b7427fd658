package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/canaville/resort-booking-backend/internal/config"
	"github.com/canaville/resort-booking-backend/internal/services"
	"github.com/canaville/resort-booking-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.AdminConfig{
		Username:     "admin",
		PasswordHash: string(hash),
		JWTSecret:    "test-secret",
		TokenExpiry:  time.Hour,
	}

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	jwtService := jwt.NewService(cfg.JWTSecret, cfg.TokenExpiry)
	return NewAuthHandler(services.NewAdminAuthService(cfg, jwtService, logger))
}

func performLogin(handler *AuthHandler, body interface{}) *httptest.ResponseRecorder {
	router := gin.New()
	router.POST("/api/v1/admin/login", handler.AdminLogin)

	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAdminLogin(t *testing.T) {
	handler := setupAuthHandler(t)

	t.Run("Success", func(t *testing.T) {
		recorder := performLogin(handler, AdminLoginRequest{
			Username: "admin",
			Password: "correct horse",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp services.AdminLoginResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, int64(3600), resp.ExpiresIn)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		recorder := performLogin(handler, AdminLoginRequest{
			Username: "admin",
			Password: "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "invalid_credentials")
	})

	t.Run("Missing Fields", func(t *testing.T) {
		recorder := performLogin(handler, map[string]string{"username": "admin"})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "validation_error")
	})
}
