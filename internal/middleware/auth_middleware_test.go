package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajni12071985-debug/pragati/internal/pkg/auth"
)

func newProtectedRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "camplink.test",
	})
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/admin/stats", m.JWTAuth(), m.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, jwtService
}

func get(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuth_ValidAdminToken(t *testing.T) {
	router, jwtService := newProtectedRouter(t)
	token, _, err := jwtService.GenerateAdminToken()
	require.NoError(t, err)

	rec := get(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router, _ := newProtectedRouter(t)

	rec := get(router, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication required")
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	router, _ := newProtectedRouter(t)

	rec := get(router, "Bearer not.a.token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	router, _ := newProtectedRouter(t)
	expired := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "camplink.test",
	})
	token, _, err := expired.GenerateAdminToken()
	require.NoError(t, err)

	rec := get(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token expired")
}
