package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Discovery describes every route the service exposes.
func Discovery(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "taskboard",
		"routes": []gin.H{
			{"method": "GET", "path": "/users", "description": "list all users with their tasks"},
			{"method": "GET", "path": "/users/:id", "description": "get one user with their tasks"},
			{"method": "POST", "path": "/users", "description": "create a user {name, email}"},
			{"method": "PUT", "path": "/users/:id", "description": "update a user {name?, email?}"},
			{"method": "DELETE", "path": "/users/:id", "description": "delete a user without tasks"},
			{"method": "GET", "path": "/tasks", "description": "list tasks, filters: ownerId, completed"},
			{"method": "GET", "path": "/tasks/:id", "description": "get one task"},
			{"method": "POST", "path": "/tasks", "description": "create a task {title, description?, ownerId}"},
			{"method": "PUT", "path": "/tasks/:id", "description": "update a task {title?, description?, completed?}"},
			{"method": "DELETE", "path": "/tasks/:id", "description": "delete a task"},
			{"method": "GET", "path": "/stats", "description": "summary report over users and tasks"},
			{"method": "GET", "path": "/ws/events", "description": "websocket feed of mutation events"},
		},
	})
}

// NotFound answers every unmatched route.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
}
