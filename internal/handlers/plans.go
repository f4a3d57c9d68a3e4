package handlers

import (
	"net/http"
	"time"

	"github.com/denerose/VeganMealAppApi-sub000/internal/middleware"
	"github.com/denerose/VeganMealAppApi-sub000/internal/models"
	"github.com/denerose/VeganMealAppApi-sub000/internal/planning"
	"github.com/denerose/VeganMealAppApi-sub000/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreatePlan creates a weekly plan starting on the given date
func CreatePlan(c *gin.Context) {
	db, ok := middleware.GetTenantDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}
	tenantID, _ := middleware.GetTenantID(c)

	var req models.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	startingDate, err := time.Parse(models.DateLayout, req.StartingDate)
	if err != nil {
		respondError(c, &models.InvalidInputError{Msg: "invalid date supplied"})
		return
	}

	plan, err := planning.New(tenantID, startingDate, req.WeekStartDay, uuid.Nil)
	if err != nil {
		respondError(c, err)
		return
	}

	repo := repository.NewPlanRepository(db)
	if err := repo.Create(c.Request.Context(), plan); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, planResponse(plan))
}

// GetPlan returns a plan by id
func GetPlan(c *gin.Context) {
	plan, ok := loadPlan(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, planResponse(plan))
}

// GetPlanByStartDate returns the plan for the week starting on ?starting_date=
func GetPlanByStartDate(c *gin.Context) {
	db, ok := middleware.GetTenantDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}
	tenantID, _ := middleware.GetTenantID(c)

	startingDate, err := time.Parse(models.DateLayout, c.Query("starting_date"))
	if err != nil {
		respondError(c, &models.InvalidInputError{Msg: "invalid date supplied"})
		return
	}

	repo := repository.NewPlanRepository(db)
	plan, err := repo.FindByTenantAndStartDate(c.Request.Context(), tenantID, startingDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, planResponse(plan))
}

// AssignMeal sets or clears one slot on one day of the plan, then persists
// the whole aggregate
func AssignMeal(c *gin.Context) {
	plan, ok := loadPlan(c)
	if !ok {
		return
	}
	db, _ := middleware.GetTenantDB(c)

	var req models.AssignMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		respondError(c, &models.InvalidInputError{Msg: "invalid date supplied"})
		return
	}

	if err := plan.AssignMeal(date, req.Slot, req.Assignment); err != nil {
		respondError(c, err)
		return
	}

	repo := repository.NewPlanRepository(db)
	if err := repo.Save(c.Request.Context(), plan); err != nil {
		respondError(c, err)
		return
	}

	day, err := plan.DayPlanFor(date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dayResponse(day))
}

// PopulateLeftovers recomputes leftover lunches for the plan and persists it
func PopulateLeftovers(c *gin.Context) {
	plan, ok := loadPlan(c)
	if !ok {
		return
	}
	db, _ := middleware.GetTenantDB(c)

	plan.PopulateLeftovers()

	repo := repository.NewPlanRepository(db)
	if err := repo.Save(c.Request.Context(), plan); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, planResponse(plan))
}

// DeletePlan removes a plan and its days
func DeletePlan(c *gin.Context) {
	db, ok := middleware.GetTenantDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}
	tenantID, _ := middleware.GetTenantID(c)

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan id"})
		return
	}

	repo := repository.NewPlanRepository(db)
	if err := repo.Delete(c.Request.Context(), tenantID, planID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted"})
}

// loadPlan fetches the plan named by the :id route param into memory. On
// failure it writes the error response and returns ok=false.
func loadPlan(c *gin.Context) (*planning.WeeklyPlan, bool) {
	db, ok := middleware.GetTenantDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return nil, false
	}
	tenantID, _ := middleware.GetTenantID(c)

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan id"})
		return nil, false
	}

	repo := repository.NewPlanRepository(db)
	plan, err := repo.FindByID(c.Request.Context(), tenantID, planID)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return plan, true
}

func planResponse(plan *planning.WeeklyPlan) models.PlanResponse {
	days := plan.Days()
	resp := models.PlanResponse{
		ID:           plan.ID(),
		TenantID:     plan.TenantID(),
		StartingDate: plan.StartingDate().Format(models.DateLayout),
		WeekStartDay: plan.WeekStartDay(),
		Days:         make([]models.DayPlanResponse, 0, len(days)),
	}
	for _, day := range days {
		resp.Days = append(resp.Days, dayResponse(day))
	}
	return resp
}

func dayResponse(day models.DayPlan) models.DayPlanResponse {
	return models.DayPlanResponse{
		Date:         day.Date.Format(models.DateLayout),
		LongDay:      day.LongDay,
		ShortDay:     day.ShortDay,
		LunchMealID:  day.LunchMealID,
		DinnerMealID: day.DinnerMealID,
		IsLeftover:   day.IsLeftover,
	}
}
