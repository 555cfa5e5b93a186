package handlers

import (
	"errors"
	"net/http"

	"fitlog/internal/service"

	"github.com/gin-gonic/gin"
)

func gymLogInputFromForm(c *gin.Context) service.GymLogInput {
	return service.GymLogInput{
		ID:        formID(c),
		Exercise:  c.PostForm("exercise"),
		Weight:    formOptFloat(c, "weight"),
		Reps:      formOptInt(c, "reps"),
		EntryDate: c.PostForm("entry_date"),
	}
}

// @Summary      Add a gym log entry
// @Tags         gym
// @Accept       x-www-form-urlencoded
// @Success      302
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /addGymLog [post]
func (h *Handler) addGymLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	if _, err := h.services.AddGymLog(c.Request.Context(), userID, gymLogInputFromForm(c)); err != nil {
		h.respondEntryError(c, "add_gym_log_failed", err)
		return
	}
	c.Redirect(http.StatusFound, homePath)
}

// @Summary      Update a gym log entry
// @Tags         gym
// @Accept       x-www-form-urlencoded
// @Success      302
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /updateGymLog [post]
func (h *Handler) updateGymLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	if err := h.services.UpdateGymLog(c.Request.Context(), userID, gymLogInputFromForm(c)); err != nil {
		h.respondEntryError(c, "update_gym_log_failed", err)
		return
	}
	c.Redirect(http.StatusFound, homePath)
}

// @Summary      Delete a gym log entry
// @Tags         gym
// @Accept       x-www-form-urlencoded
// @Success      302
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /deleteGymLog [post]
func (h *Handler) deleteGymLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	if err := h.services.DeleteGymLog(c.Request.Context(), userID, formID(c)); err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteEntry, "delete_gym_log_failed", err)
		return
	}
	c.Redirect(http.StatusFound, homePath)
}
