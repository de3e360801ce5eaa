package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/SscSPs/visa_office_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.Default()))
	handlers := append([]gin.HandlerFunc{AuthMiddleware(testSecret)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		role, _ := GetUserRoleFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userID": userID, "role": role})
	})
	r.GET("/protected", handlers...)
	return r
}

func doGet(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthedRouter()

	t.Run("missing header", func(t *testing.T) {
		w := doGet(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := utils.GenerateJWT("u1", "a@b.c", "USER", testSecret, -time.Minute, "test")
		require.NoError(t, err)
		w := doGet(r, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := utils.GenerateJWT("u1", "a@b.c", "USER", "other", time.Hour, "test")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, doGet(r, token).Code)
	})

	t.Run("valid token exposes user and role", func(t *testing.T) {
		token, err := utils.GenerateJWT("u1", "a@b.c", "ADMIN", testSecret, time.Hour, "test")
		require.NoError(t, err)
		w := doGet(r, token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"userID":"u1","role":"ADMIN"}`, w.Body.String())
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}

func TestRequireRole(t *testing.T) {
	r := newAuthedRouter(RequireRole(domain.RoleAdmin))

	userToken, err := utils.GenerateJWT("u1", "u@b.c", string(domain.RoleUser), testSecret, time.Hour, "test")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, doGet(r, userToken).Code)

	adminToken, err := utils.GenerateJWT("u2", "a@b.c", string(domain.RoleAdmin), testSecret, time.Hour, "test")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, doGet(r, adminToken).Code)
}

func TestRateLimit_MemoryStore(t *testing.T) {
	lim, err := NewLimiter("2-M", "")
	require.NoError(t, err)

	r := gin.New()
	r.POST("/login", RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewLimiter_InvalidRate(t *testing.T) {
	_, err := NewLimiter("lots", "")
	assert.Error(t, err)
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, slog.Default(), GetLoggerFromCtx(context.Background()))

	logger := slog.New(slog.NewTextHandler(httptest.NewRecorder(), nil))
	assert.Same(t, logger, GetLoggerFromCtx(WithLogger(context.Background(), logger)))
}

func TestRequireUUIDParams(t *testing.T) {
	r := gin.New()
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }
	r.GET("/clients/:id", RequireUUIDParams("id"), ok)
	r.GET("/health", RequireUUIDParams("id"), ok)

	get := func(path string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, get("/clients/6f1c2b1e-8a43-4d52-9a0e-2b7f4c1d9e10"))
	assert.Equal(t, http.StatusNotFound, get("/clients/abc"))
	assert.Equal(t, http.StatusNotFound, get("/clients/6f1c2b1e"))
	assert.Equal(t, http.StatusNoContent, get("/health"))
}
