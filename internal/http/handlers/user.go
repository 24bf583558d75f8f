package handlers

import (
	"net/http"

	"taskboard/internal/domain"

	"github.com/gin-gonic/gin"
)

// ListUsers returns every user with their tasks embedded.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Users.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if users == nil {
		users = []*domain.User{}
	}
	c.JSON(http.StatusOK, users)
}

// GetUser returns one user with their tasks, newest first.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	user, err := h.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser creates a user from {name, email}.
func (h *Handler) CreateUser(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	user, err := h.Users.Create(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	h.publish("user.created", user.ID)
	c.JSON(http.StatusCreated, user)
}

// UpdateUser partially updates a user; absent fields keep their value.
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var patch domain.UserPatch
	if err := c.BindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	user, err := h.Users.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	h.publish("user.updated", user.ID)
	c.JSON(http.StatusOK, user)
}

// DeleteUser removes a user. A user who still owns tasks is kept and
// the delete rejected, so no task is ever orphaned.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Users.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	h.publish("user.deleted", id)
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
