package handlers

import (
	"net/http"
	"strconv"

	"taskboard/internal/domain"

	"github.com/gin-gonic/gin"
)

// ListTasks returns tasks matching the optional ownerId / completed
// query filters, newest first. No filters means all tasks.
func (h *Handler) ListTasks(c *gin.Context) {
	var filter domain.TaskFilter

	if v := c.Query("ownerId"); v != "" {
		ownerID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ownerId must be an integer"})
			return
		}
		filter.OwnerID = &ownerID
	}

	// tri-state: absent is distinct from both true and false
	switch v := c.Query("completed"); v {
	case "":
	case "true", "false":
		completed := v == "true"
		filter.Completed = &completed
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "completed must be true or false"})
		return
	}

	tasks, err := h.Tasks.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTask returns one task with its reduced owner view.
func (h *Handler) GetTask(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	task, err := h.Tasks.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask creates a task from {title, description?, ownerId}. The
// owner must exist; an unknown owner is the caller's mistake and comes
// back as a 400, not a 404.
func (h *Handler) CreateTask(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OwnerID     int64  `json:"ownerId"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	task, err := h.Tasks.Create(c.Request.Context(), req.Title, req.Description, req.OwnerID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.publish("task.created", task.ID)
	c.JSON(http.StatusCreated, task)
}

// UpdateTask partially updates a task; the owner is never mutable here.
func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var patch domain.TaskPatch
	if err := c.BindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	task, err := h.Tasks.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	h.publish("task.updated", task.ID)
	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task.
func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Tasks.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	h.publish("task.deleted", id)
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}
