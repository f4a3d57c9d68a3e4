package handlers

import (
	"net/http"
	"strings"

	"github.com/denerose/VeganMealAppApi-sub000/internal/auth"
	"github.com/denerose/VeganMealAppApi-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string    `json:"token"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	TenantID uuid.UUID `json:"tenant_id"`
}

// Login authenticates a user and returns a JWT token
func Login(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		db, ok := middleware.GetTenantDB(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
			return
		}

		tenant, ok := middleware.GetTenant(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tenant context required"})
			return
		}

		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
			return
		}

		// Normalize username to lowercase
		username := strings.ToLower(strings.TrimSpace(req.Username))

		// Query user from tenant database
		query := `
			SELECT id, username, password_hash, login_enabled
			FROM users
			WHERE LOWER(username) = $1
		`

		var userID uuid.UUID
		var dbUsername string
		var passwordHash *string
		var loginEnabled bool

		err := db.QueryRow(c.Request.Context(), query, username).Scan(
			&userID, &dbUsername, &passwordHash, &loginEnabled,
		)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		// Check if login is enabled
		if !loginEnabled {
			c.JSON(http.StatusForbidden, gin.H{"error": "Login is disabled for this user"})
			return
		}

		// Check if password_hash exists
		if passwordHash == nil || *passwordHash == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Password authentication not configured for this user"})
			return
		}

		// Verify password
		err = bcrypt.CompareHashAndPassword([]byte(*passwordHash), []byte(req.Password))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		// Generate JWT token
		token, err := jwtService.GenerateToken(userID, tenant.ID, dbUsername)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		// Return token and user info
		c.JSON(http.StatusOK, LoginResponse{
			Token:    token,
			UserID:   userID,
			Username: dbUsername,
			TenantID: tenant.ID,
		})
	}
}
