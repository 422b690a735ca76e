package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"seminary/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func protectedRouter(jwtService *jwt.Service) *gin.Engine {
	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(ContextUserID),
			"role":    c.GetString(ContextUserRole),
		})
	})
	return router
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	token, _ := jwtService.GenerateToken("user-123", "admin")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	protectedRouter(jwtService).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"user-123","role":"admin"}`, w.Body.String())
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)

	protectedRouter(jwt.NewService("test-secret-key")).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidFormat(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "InvalidFormat token")

	protectedRouter(jwt.NewService("test-secret-key")).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")

	protectedRouter(jwt.NewService("test-secret-key")).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	token, _ := jwt.NewService("other-secret").GenerateToken("user-123", "admin")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	protectedRouter(jwt.NewService("test-secret-key")).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBearerToken(t *testing.T) {
	cases := map[string]struct {
		header string
		token  string
		ok     bool
	}{
		"regular":     {"Bearer abc", "abc", true},
		"lower case":  {"bearer abc", "abc", true},
		"empty token": {"Bearer ", "", false},
		"basic":       {"Basic abc", "", false},
		"missing":     {"", "", false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request, _ = http.NewRequest("GET", "/", nil)
			if tc.header != "" {
				c.Request.Header.Set("Authorization", tc.header)
			}
			token, ok := BearerToken(c)
			assert.Equal(t, tc.token, token)
			assert.Equal(t, tc.ok, ok)
		})
	}
}
