package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"NeoVax/models"
	"NeoVax/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubUserService lets a test script AuthenticateUser; the embedded interface
// covers the methods Login never touches.
type stubUserService struct {
	services.UserService
	authErr  error
	authUser *models.User
}

func (s *stubUserService) AuthenticateUser(ctx context.Context, username, password string) (*models.User, error) {
	if s.authErr != nil {
		return nil, s.authErr
	}
	return s.authUser, nil
}

func postLogin(svc services.UserService, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(svc)
	router := gin.New()
	router.POST("/auth/login", handler.Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := &stubUserService{authErr: services.ErrInvalidLogin}
	w := postLogin(svc, `{"username":"njoy","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password")
}

func TestLoginStorageFailureIsNot401(t *testing.T) {
	svc := &stubUserService{authErr: fmt.Errorf("authentication failed: connection refused")}
	w := postLogin(svc, `{"username":"njoy","password":"Passw0rd!"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "An unexpected error occurred")
	assert.NotContains(t, w.Body.String(), "Invalid username or password")
}

func TestLoginMissingFields(t *testing.T) {
	w := postLogin(&stubUserService{}, `{"username":"njoy"}`)
	assert.Equal(t, 422, w.Code)
}
