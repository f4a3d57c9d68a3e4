package handlers

import (
	"errors"
	"net/http"

	"github.com/denerose/VeganMealAppApi-sub000/internal/models"
	"github.com/gin-gonic/gin"
)

// respondError maps the core error taxonomy onto HTTP statuses. All taxonomy
// messages are caller-safe, so they go out verbatim; anything else is a 500
// with the detail attached.
func respondError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var alignmentErr *models.AlignmentError
	var notFoundErr *models.NotFoundError
	var invalidInputErr *models.InvalidInputError
	var conflictErr *models.ConflictError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Msg})
	case errors.As(err, &invalidInputErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidInputErr.Msg})
	case errors.As(err, &alignmentErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": alignmentErr.Msg})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Msg})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Msg})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "details": err.Error()})
	}
}
