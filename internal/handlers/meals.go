package handlers

import (
	"net/http"

	"github.com/denerose/VeganMealAppApi-sub000/internal/meals"
	"github.com/denerose/VeganMealAppApi-sub000/internal/middleware"
	"github.com/denerose/VeganMealAppApi-sub000/internal/models"
	"github.com/denerose/VeganMealAppApi-sub000/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateMealRequest struct {
	Name      string                   `json:"name" binding:"required"`
	Qualities models.QualityFlagsPatch `json:"qualities"`
}

// ListMeals returns the tenant's meal catalog
func ListMeals(c *gin.Context) {
	db, ok := middleware.GetTenantDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}
	tenantID, _ := middleware.GetTenantID(c)

	includeArchived := c.Query("include_archived") == "true"

	repo := repository.NewMealRepository(db)
	items, err := repo.ListMeals(c.Request.Context(), tenantID, includeArchived)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"meals": items,
		"count": len(items),
	})
}

// CreateMeal adds a catalog entry. Quality flags default to dinner-only and
// are validated before anything is written.
func CreateMeal(c *gin.Context) {
	db, ok := middleware.GetTenantDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}
	tenantID, _ := middleware.GetTenantID(c)

	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	flags, err := models.NewQualityFlags(req.Qualities)
	if err != nil {
		respondError(c, err)
		return
	}

	repo := repository.NewMealRepository(db)
	meal, err := repo.CreateMeal(c.Request.Context(), tenantID, req.Name, flags)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meal)
}

// UpdateMealQualities merges a patch over a meal's flags and re-validates
func UpdateMealQualities(c *gin.Context) {
	db, ok := middleware.GetTenantDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}
	tenantID, _ := middleware.GetTenantID(c)

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal id"})
		return
	}

	var patch models.QualityFlagsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	repo := repository.NewMealRepository(db)
	meal, err := repo.GetMeal(c.Request.Context(), tenantID, mealID)
	if err != nil {
		respondError(c, err)
		return
	}

	flags, err := meal.Qualities.Update(patch)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := repo.UpdateQualities(c.Request.Context(), tenantID, mealID, flags); err != nil {
		respondError(c, err)
		return
	}

	meal.Qualities = flags
	c.JSON(http.StatusOK, meal)
}

// ArchiveMeal removes a meal from future eligibility queries
func ArchiveMeal(c *gin.Context) {
	db, ok := middleware.GetTenantDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}
	tenantID, _ := middleware.GetTenantID(c)

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal id"})
		return
	}

	repo := repository.NewMealRepository(db)
	if err := repo.ArchiveMeal(c.Request.Context(), tenantID, mealID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meal archived"})
}

// EligibleMeals returns the candidate set for a date and slot, filtered by
// the day's taste preferences
func EligibleMeals(c *gin.Context) {
	db, ok := middleware.GetTenantDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}
	tenantID, _ := middleware.GetTenantID(c)

	svc := meals.NewEligibleMealsService(
		repository.NewMealRepository(db),
		repository.NewSettingsRepository(db),
	)

	candidates, err := svc.Execute(c.Request.Context(), meals.Request{
		TenantID: tenantID,
		Date:     c.Query("date"),
		MealType: models.MealSlot(c.DefaultQuery("meal_type", string(models.SlotDinner))),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"meals": candidates,
		"count": len(candidates),
	})
}

// RandomMeal returns one uniformly random eligible meal, or no candidate
func RandomMeal(c *gin.Context) {
	db, ok := middleware.GetTenantDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}
	tenantID, _ := middleware.GetTenantID(c)

	svc := meals.NewRandomMealService(meals.NewEligibleMealsService(
		repository.NewMealRepository(db),
		repository.NewSettingsRepository(db),
	))

	pick, err := svc.Execute(c.Request.Context(), meals.Request{
		TenantID: tenantID,
		Date:     c.Query("date"),
		MealType: models.MealSlot(c.DefaultQuery("meal_type", string(models.SlotDinner))),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if pick == nil {
		c.JSON(http.StatusOK, gin.H{"meal": nil, "message": "No eligible meals for this day"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": pick})
}
