package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const errLoadDashboard = "failed to load dashboard"

// @Summary      Dashboard with all entries and today's totals
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.DashboardOverview
// @Failure      500  {object}  map[string]string
// @Router       /home [get]
func (h *Handler) home(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	overview, err := h.services.Overview(c.Request.Context(), userID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadDashboard, "dashboard_failed", err,
			"user_id", userID)
		return
	}
	c.JSON(http.StatusOK, overview)
}
