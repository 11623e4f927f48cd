package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type customKey int

const (
	LogDataKey customKey = iota
)

// RequestLogHandler enriches records with the request data stored in ctx.
type RequestLogHandler struct {
	handler slog.Handler
}

type LogData struct {
	RequestID string
	Method    string
	Path      string
}

func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.Handler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	return slog.New(NewRequestLogHandler(handler))
}

// ParseLevel maps debug/info/warn/error to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func NewRequestLogHandler(h slog.Handler) *RequestLogHandler {
	return &RequestLogHandler{handler: h}
}

func (h *RequestLogHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.handler.Enabled(ctx, lvl)
}

func (h *RequestLogHandler) Handle(ctx context.Context, rec slog.Record) error {
	if ld, ok := ctx.Value(LogDataKey).(LogData); ok {
		if ld.RequestID != "" {
			rec.AddAttrs(slog.String("request_id", ld.RequestID))
		}
		if ld.Method != "" {
			rec.AddAttrs(slog.String("method", ld.Method))
		}
		if ld.Path != "" {
			rec.AddAttrs(slog.String("path", ld.Path))
		}
	}
	return h.handler.Handle(ctx, rec)
}

func (h *RequestLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &RequestLogHandler{handler: h.handler.WithAttrs(attrs)}
}

func (h *RequestLogHandler) WithGroup(name string) slog.Handler {
	return &RequestLogHandler{handler: h.handler.WithGroup(name)}
}

func WithRequest(ctx context.Context, requestID, method, path string) context.Context {
	return context.WithValue(ctx, LogDataKey, LogData{
		RequestID: requestID,
		Method:    method,
		Path:      path,
	})
}

func RequestIDFromContext(ctx context.Context) string {
	ld, ok := ctx.Value(LogDataKey).(LogData)
	if !ok {
		return ""
	}
	return ld.RequestID
}
