package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"taskboard/internal/domain"
	"taskboard/internal/logger"
	"taskboard/internal/repository"
	"taskboard/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserStore is the slice of the user repository the handlers need.
type UserStore interface {
	ListAll(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, name, email string) (*domain.User, error)
	Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// TaskStore is the slice of the task repository the handlers need.
type TaskStore interface {
	List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error)
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	Create(ctx context.Context, title, description string, ownerID int64) (*domain.Task, error)
	Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

// StatsStore computes the summary report.
type StatsStore interface {
	Summary(ctx context.Context) (domain.Summary, error)
}

type Handler struct {
	Users UserStore
	Tasks TaskStore
	Stats StatsStore
	Hub   *ws.Hub
}

func NewHandler(db *pgxpool.Pool, hub *ws.Hub) *Handler {
	return &Handler{
		Users: repository.NewUserRepository(db),
		Tasks: repository.NewTaskRepository(db),
		Stats: repository.NewStatsRepository(db),
		Hub:   hub,
	}
}

// publish pushes a mutation event to the feed; a nil hub is fine (tests).
func (h *Handler) publish(eventType string, id int64) {
	if h.Hub != nil {
		h.Hub.Publish(eventType, id)
	}
}

// respondError maps the domain taxonomy to status codes. Anything
// outside the taxonomy is logged with its cause and answered with a
// generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalid), errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	default:
		logger.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
