package web

import (
	"log/slog"
	"net/http"
	"time"

	api "github.com/JDGuzman2001/chocolatin-metrics-backend/api/v1"
	"github.com/JDGuzman2001/chocolatin-metrics-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/xid"
)

const (
	RequestIDHeader = "X-Request-ID"

	corsAllowMethods = "GET, POST, PUT, PATCH, DELETE, HEAD, OPTIONS"
	corsMaxAge       = "86400"
)

// CORS allows cross-origin requests from allowedOrigins ("*" allows any).
// Allowed origins get every standard method and whatever headers the
// preflight asks for.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	originsSet := make(map[string]struct{}, len(allowedOrigins))
	anyOrigin := false
	for _, o := range allowedOrigins {
		if o == "*" {
			anyOrigin = true
			continue
		}
		originsSet[o] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		_, ok := originsSet[origin]
		if origin != "" && (ok || anyOrigin) {
			h := c.Writer.Header()
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			if reqHeaders := c.GetHeader("Access-Control-Request-Headers"); reqHeaders != "" {
				h.Set("Access-Control-Allow-Headers", reqHeaders)
			}
			h.Set("Access-Control-Expose-Headers", RequestIDHeader)
			h.Set("Access-Control-Max-Age", corsMaxAge)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Recovery turns a panic into a 500 and logs it.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.ErrorContext(c.Request.Context(), "panic recovered", slog.Any("panic", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
			}
		}()
		c.Next()
	}
}

// RequestLogger assigns a request id, puts it in the request context for
// every log line and writes one access log entry per request.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = xid.New().String()
		}
		c.Header(RequestIDHeader, requestID)

		ctx := logger.WithRequest(c.Request.Context(), requestID, c.Request.Method, c.Request.URL.Path)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.LogAttrs(ctx, level, "request",
			slog.Int("status", status),
			slog.String("query", c.Request.URL.RawQuery),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

// NewServer создаёт http.Handler с маршрутами из OpenAPI спецификации.
// Маршруты: GET /variables, GET /variables/module/{module},
// GET /variables/date-range, GET /health
func NewServer(handler *Handler, allowedOrigins []string) http.Handler {
	router := gin.New()
	router.Use(RequestLogger(handler.logger), Recovery(handler.logger), CORS(allowedOrigins))
	api.RegisterHandlersWithOptions(router, handler, api.GinServerOptions{
		ErrorHandler: handler.bindError,
	})
	return router
}
