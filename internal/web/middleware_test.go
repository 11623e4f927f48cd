package web_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JDGuzman2001/chocolatin-metrics-backend/internal/models"
	"github.com/JDGuzman2001/chocolatin-metrics-backend/internal/web"
	"github.com/JDGuzman2001/chocolatin-metrics-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corsRouter(origins []string) *gin.Engine {
	router := gin.New()
	router.Use(web.CORS(origins))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestCORS(t *testing.T) {
	t.Run("allowed origin gets permissive headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()

		corsRouter([]string{"http://localhost:3000", "https://example.com"}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, "GET, POST, PUT, PATCH, DELETE, HEAD, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Origin", w.Header().Get("Vary"))
	})

	t.Run("disallowed origin gets no headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "https://evil.com")
		w := httptest.NewRecorder()

		corsRouter([]string{"http://localhost:3000"}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("no origin header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		corsRouter([]string{"*"}).ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard echoes the origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "https://dashboard.example")
		w := httptest.NewRecorder()

		corsRouter([]string{"*"}).ServeHTTP(w, req)

		assert.Equal(t, "https://dashboard.example", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight echoes requested headers and stops the chain", func(t *testing.T) {
		handlerCalled := false
		router := gin.New()
		router.Use(web.CORS([]string{"http://localhost:5173"}))
		router.OPTIONS("/test", func(c *gin.Context) {
			handlerCalled = true
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodOptions, "/test", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", "GET")
		req.Header.Set("Access-Control-Request-Headers", "X-Custom, Content-Type")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.False(t, handlerCalled)
		assert.Equal(t, "X-Custom, Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
		assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
	})
}

func TestCORS_PreflightOnAPIRoute(t *testing.T) {
	svc := &mockService{}
	srv := web.NewServer(web.NewHandler(svc, testLogger), []string{"http://localhost:5173"})

	req := httptest.NewRequest(http.MethodOptions, "/variables", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	router := gin.New()
	router.Use(web.Recovery(log))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "boom")
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, slog.LevelInfo)
	var seenID string
	router := gin.New()
	router.Use(web.RequestLogger(log))
	router.GET("/variables", func(c *gin.Context) {
		seenID = logger.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/variables?limit=1", nil))

	id := w.Header().Get(web.RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Equal(t, id, seenID)

	var line map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &line))
	assert.Equal(t, "request", line["msg"])
	assert.Equal(t, id, line["request_id"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/variables", line["path"])
	assert.Equal(t, "limit=1", line["query"])
	assert.EqualValues(t, 200, line["status"])
}

func TestRequestLogger_KeepsIncomingID(t *testing.T) {
	var buf bytes.Buffer
	svc := &mockService{
		listAll: func(_ context.Context, _ models.Page) ([]models.Reading, error) {
			return []models.Reading{}, nil
		},
	}
	srv := web.NewServer(web.NewHandler(svc, logger.New(&buf, slog.LevelInfo)), nil)

	req := httptest.NewRequest(http.MethodGet, "/variables", nil)
	req.Header.Set(web.RequestIDHeader, "upstream-42")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, "upstream-42", w.Header().Get(web.RequestIDHeader))
	assert.Contains(t, buf.String(), `"request_id":"upstream-42"`)
}
