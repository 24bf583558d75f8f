package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStats returns the summary report, computed fresh on every call.
func (h *Handler) GetStats(c *gin.Context) {
	summary, err := h.Stats.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
