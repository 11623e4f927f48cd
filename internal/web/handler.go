package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	api "github.com/JDGuzman2001/chocolatin-metrics-backend/api/v1"
	"github.com/JDGuzman2001/chocolatin-metrics-backend/internal/models"
	"github.com/JDGuzman2001/chocolatin-metrics-backend/internal/service"
	"github.com/gin-gonic/gin"
)

type ServiceAPI interface {
	ListAll(ctx context.Context, page models.Page) ([]models.Reading, error)
	ListByModule(ctx context.Context, module string, page models.Page) ([]models.Reading, error)
	ListByDateRange(ctx context.Context, start, end time.Time, page models.Page) ([]models.Reading, error)
	Ping(ctx context.Context) error
}

type Handler struct {
	svc    ServiceAPI
	logger *slog.Logger
}

func NewHandler(svc ServiceAPI, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// ListVariables реализует интерфейс api.ServerInterface.
// GET /variables
func (h *Handler) ListVariables(c *gin.Context, params api.ListVariablesParams) {
	result, err := h.svc.ListAll(c.Request.Context(), toPage(params.Limit, params.Offset))
	if err != nil {
		h.handleError(c, "failed to get variables", err)
		return
	}
	c.JSON(http.StatusOK, toReadings(result))
}

// ListVariablesByModule реализует интерфейс api.ServerInterface.
// module: path-параметр /variables/module/{module}.
func (h *Handler) ListVariablesByModule(c *gin.Context, module string, params api.ListVariablesByModuleParams) {
	result, err := h.svc.ListByModule(c.Request.Context(), module, toPage(params.Limit, params.Offset))
	if err != nil {
		h.handleError(c, "failed to get variables by module", err)
		return
	}
	c.JSON(http.StatusOK, toReadings(result))
}

// ListVariablesByDateRange реализует интерфейс api.ServerInterface.
// Даты разбираются здесь, до обращения к сервису.
func (h *Handler) ListVariablesByDateRange(c *gin.Context, params api.ListVariablesByDateRangeParams) {
	start, err := ParseDateTime(params.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: fmt.Sprintf("invalid start_date: %s", err)})
		return
	}
	end, err := ParseDateTime(params.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: fmt.Sprintf("invalid end_date: %s", err)})
		return
	}

	result, err := h.svc.ListByDateRange(c.Request.Context(), start, end, toPage(params.Limit, params.Offset))
	if err != nil {
		h.handleError(c, "failed to get variables by date range", err)
		return
	}
	c.JSON(http.StatusOK, toReadings(result))
}

func (h *Handler) GetHealth(c *gin.Context) {
	if err := h.svc.Ping(c.Request.Context()); err != nil {
		h.logger.WarnContext(c.Request.Context(), "health check failed", slog.String("error", err.Error()))
		msg := err.Error()
		c.JSON(http.StatusServiceUnavailable, api.HealthResponse{Status: "unavailable", Error: &msg})
		return
	}
	c.JSON(http.StatusOK, api.HealthResponse{Status: "ok"})
}

func (h *Handler) handleError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyModule),
		errors.Is(err, service.ErrInvalidLimit),
		errors.Is(err, service.ErrInvalidOffset):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})

	default:
		h.logger.ErrorContext(c.Request.Context(), op, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fmt.Sprintf("%s: %s", op, err)})
	}
}

// bindError answers parameter binding failures from the generated wrappers.
func (h *Handler) bindError(c *gin.Context, err error, statusCode int) {
	c.JSON(statusCode, api.ErrorResponse{Error: err.Error()})
}

func toPage(limit, offset *int) models.Page {
	var page models.Page
	if limit != nil {
		page.Limit = *limit
	}
	if offset != nil {
		page.Offset = *offset
	}
	return page
}

func toReadings(in []models.Reading) []api.Reading {
	out := make([]api.Reading, 0, len(in))
	for _, r := range in {
		out = append(out, api.Reading{
			Id:        r.ID,
			Module:    r.Module,
			Address:   r.Address,
			Symbol:    r.Symbol,
			DataType:  r.DataType,
			Comment:   r.Comment,
			Value:     r.Value,
			Timestamp: r.Timestamp,
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}
