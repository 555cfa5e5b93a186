package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const errDBUnavailable = "database unavailable"

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      Database connectivity check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /dbTest [get]
func (h *Handler) dbTest(c *gin.Context) {
	now, err := h.services.DBNow(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errDBUnavailable, "db_test_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"db_time": now.Format(time.RFC3339),
	})
}
