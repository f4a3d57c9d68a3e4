package handlers

import (
	"net/http"

	"github.com/denerose/VeganMealAppApi-sub000/internal/middleware"
	"github.com/denerose/VeganMealAppApi-sub000/internal/models"
	"github.com/denerose/VeganMealAppApi-sub000/internal/repository"
	"github.com/gin-gonic/gin"
)

type UpdateSettingsRequest struct {
	WeekStartDay     models.WeekStartDay    `json:"week_start_day" binding:"required"`
	DailyPreferences []models.DayPreference `json:"daily_preferences" binding:"required"`
}

// GetMealPreferences returns the tenant's weekly taste preferences
func GetMealPreferences(c *gin.Context) {
	db, ok := middleware.GetTenantDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}
	tenantID, _ := middleware.GetTenantID(c)

	repo := repository.NewSettingsRepository(db)
	settings, err := repo.FindByTenantID(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	if settings == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user settings not found"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateMealPreferences replaces the tenant's settings wholesale. The body
// must carry exactly one preference entry per weekday.
func UpdateMealPreferences(c *gin.Context) {
	db, ok := middleware.GetTenantDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}
	tenantID, _ := middleware.GetTenantID(c)

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	settings := &models.UserSettings{
		TenantID:         tenantID,
		WeekStartDay:     req.WeekStartDay,
		DailyPreferences: req.DailyPreferences,
	}

	repo := repository.NewSettingsRepository(db)
	if err := repo.Upsert(c.Request.Context(), settings); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
