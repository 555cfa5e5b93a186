package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"fitlog/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errSaveEntry   = "failed to save entry"
	errDeleteEntry = "failed to delete entry"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondEntryError maps service errors: validation mistakes are the
// caller's fault, everything else is ours.
func (h *Handler) respondEntryError(c *gin.Context, logKey string, err error) {
	if errors.Is(err, service.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, errSaveEntry, logKey, err)
}

// Optional numeric form fields: a missing or blank value means nil, not zero.
// Malformed numbers are silently dropped the same way, matching the lenient
// form handling the rest of the flow relies on.

func formOptFloat(c *gin.Context, key string) *float64 {
	raw := strings.TrimSpace(c.PostForm(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func formOptInt(c *gin.Context, key string) *int {
	raw := strings.TrimSpace(c.PostForm(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func formOptString(c *gin.Context, key string) *string {
	raw := strings.TrimSpace(c.PostForm(key))
	if raw == "" {
		return nil
	}
	return &raw
}

func formID(c *gin.Context) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(c.PostForm("id")), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func foodInputFromForm(c *gin.Context) service.FoodEntryInput {
	return service.FoodEntryInput{
		ID:             formID(c),
		Name:           c.PostForm("name"),
		Brand:          formOptString(c, "brand"),
		Calories:       formOptFloat(c, "calories"),
		Protein:        formOptFloat(c, "protein"),
		Carbs:          formOptFloat(c, "carbs"),
		Fat:            formOptFloat(c, "fat"),
		Sodium:         formOptFloat(c, "sodium"),
		Sugar:          formOptFloat(c, "sugar"),
		Fiber:          formOptFloat(c, "fiber"),
		Cholesterol:    formOptFloat(c, "cholesterol"),
		SaturatedFat:   formOptFloat(c, "saturated_fat"),
		UnsaturatedFat: formOptFloat(c, "unsaturated_fat"),
		MealType:       c.PostForm("meal_type"),
		EntryDate:      c.PostForm("entry_date"),
	}
}

// @Summary      Add a food entry
// @Tags         food
// @Accept       x-www-form-urlencoded
// @Success      302
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /addFood [post]
func (h *Handler) addFood(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	if _, err := h.services.AddFood(c.Request.Context(), userID, foodInputFromForm(c)); err != nil {
		h.respondEntryError(c, "add_food_failed", err)
		return
	}
	c.Redirect(http.StatusFound, homePath)
}

// @Summary      Update a food entry
// @Tags         food
// @Accept       x-www-form-urlencoded
// @Success      302
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /updateFood [post]
func (h *Handler) updateFood(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	if err := h.services.UpdateFood(c.Request.Context(), userID, foodInputFromForm(c)); err != nil {
		h.respondEntryError(c, "update_food_failed", err)
		return
	}
	c.Redirect(http.StatusFound, homePath)
}

// @Summary      Delete a food entry
// @Tags         food
// @Accept       x-www-form-urlencoded
// @Success      302
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /deleteFood [post]
func (h *Handler) deleteFood(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	if err := h.services.DeleteFood(c.Request.Context(), userID, formID(c)); err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteEntry, "delete_food_failed", err)
		return
	}
	c.Redirect(http.StatusFound, homePath)
}

// @Summary      Search the food database
// @Tags         food
// @Produce      json
// @Param        query  query  string  false  "Search terms"
// @Success      200  {array}  models.NutritionFacts
// @Router       /searchFood [get]
func (h *Handler) searchFood(c *gin.Context) {
	results := h.services.Search(c.Request.Context(), c.Query("query"))
	c.JSON(http.StatusOK, results)
}

// searchResultPayload is a lookup result posted back as JSON. Pointer macros
// keep "absent" distinct from zero.
type searchResultPayload struct {
	Name      string   `json:"name" binding:"required"`
	Brand     *string  `json:"brand,omitempty"`
	Calories  *float64 `json:"calories,omitempty"`
	Protein   *float64 `json:"protein,omitempty"`
	Carbs     *float64 `json:"carbs,omitempty"`
	Fat       *float64 `json:"fat,omitempty"`
	Sodium    *float64 `json:"sodium,omitempty"`
	Sugar     *float64 `json:"sugar,omitempty"`
	Fiber     *float64 `json:"fiber,omitempty"`
	MealType  string   `json:"meal_type,omitempty"`
	EntryDate string   `json:"entry_date,omitempty"`
}

// @Summary      Add a food entry from a search result
// @Tags         food
// @Accept       json
// @Produce      json
// @Param        body  body  searchResultPayload  true  "Selected search result"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /addFoodFromSearch [post]
func (h *Handler) addFoodFromSearch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	var payload searchResultPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}

	id, err := h.services.AddFood(c.Request.Context(), userID, service.FoodEntryInput{
		Name:      payload.Name,
		Brand:     payload.Brand,
		Calories:  payload.Calories,
		Protein:   payload.Protein,
		Carbs:     payload.Carbs,
		Fat:       payload.Fat,
		Sodium:    payload.Sodium,
		Sugar:     payload.Sugar,
		Fiber:     payload.Fiber,
		MealType:  payload.MealType,
		EntryDate: payload.EntryDate,
	})
	if err != nil {
		h.respondEntryError(c, "add_food_from_search_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
