package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"mediavault/backend/model"
	"mediavault/backend/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestRouter(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()
	users, err := model.NewUserStore(filepath.Join(t.TempDir(), "users.json"))
	assert.NoError(t, err)
	auth := service.NewAuthService(users, "test-jwt-secret-for-middleware-tests")

	router := gin.New()
	router.GET("/protected", JWTAuth(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
			"email":   c.GetString("email"),
		})
	})
	return router, auth
}

func TestJWTAuth_NoAuthorizationHeader(t *testing.T) {
	router, _ := setupTestRouter(t)

	req, _ := http.NewRequest("GET", "/protected", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Missing Authorization header")
}

func TestJWTAuth_InvalidFormat(t *testing.T) {
	router, _ := setupTestRouter(t)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "InvalidFormat token123")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid Authorization header")
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	router, _ := setupTestRouter(t)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid-jwt-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid token")
}

func TestJWTAuth_ValidToken(t *testing.T) {
	router, auth := setupTestRouter(t)

	result, err := auth.Register("alice@example.com", "password123")
	assert.NoError(t, err)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+result.Token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), result.User.ID)
	assert.Contains(t, resp.Body.String(), "alice@example.com")
}
