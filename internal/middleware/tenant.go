package middleware

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/denerose/VeganMealAppApi-sub000/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// contextKey is the key type for tenant context values
type contextKey string

const (
	TenantContextKey contextKey = "tenant"
	TenantIDKey      contextKey = "tenant_id"
	TenantSlugKey    contextKey = "tenant_slug"
	TenantDBKey      contextKey = "tenant_db"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$`)

// TenantDBProvider interface for getting tenant database connections
type TenantDBProvider interface {
	GetTenantDBBySlug(ctx context.Context, slug string) (*pgxpool.Pool, *models.Tenant, error)
}

// ExtractTenantSlug extracts the tenant slug from subdomain
// Examples:
//   - rose-house.veganmealapp.io → "rose-house"
//   - api.veganmealapp.io → "" (no tenant, API-only)
func ExtractTenantSlug(host string, baseDomain string) string {
	// Remove port if present
	if idx := strings.Index(host, ":"); idx != -1 {
		host = host[:idx]
	}

	host = strings.ToLower(host)
	baseDomain = strings.ToLower(baseDomain)

	// If host equals base domain or www, no slug
	if host == baseDomain || host == "www."+baseDomain {
		return ""
	}

	// Check if host ends with base domain
	if !strings.HasSuffix(host, "."+baseDomain) {
		return ""
	}

	// Extract subdomain
	slug := strings.TrimSuffix(host, "."+baseDomain)

	// Reserved subdomains that are not tenant slugs
	reserved := map[string]bool{
		"api":     true,
		"www":     true,
		"app":     true,
		"admin":   true,
		"staging": true,
		"dev":     true,
	}

	if reserved[slug] {
		return ""
	}

	return slug
}

// TenantMiddleware extracts the tenant slug from the subdomain and loads the
// tenant context plus its database connection
func TenantMiddleware(dbProvider TenantDBProvider, baseDomain string) gin.HandlerFunc {
	return func(c *gin.Context) {
		host := c.Request.Host
		slug := ExtractTenantSlug(host, baseDomain)

		// If no slug, continue without tenant context (API-only routes)
		if slug == "" {
			c.Next()
			return
		}

		// Validate slug format
		if !ValidateSlug(slug) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid tenant identifier",
			})
			c.Abort()
			return
		}

		// Look up tenant and get database connection
		tenantDB, tenant, err := dbProvider.GetTenantDBBySlug(c.Request.Context(), slug)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Tenant not found",
				"slug":  slug,
			})
			c.Abort()
			return
		}

		// Check if tenant is active
		if tenant.Status != "active" {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Tenant account is inactive",
			})
			c.Abort()
			return
		}

		// Store tenant info and DB connection in context
		c.Set(string(TenantIDKey), tenant.ID)
		c.Set(string(TenantSlugKey), tenant.Slug)
		c.Set(string(TenantContextKey), tenant)
		c.Set(string(TenantDBKey), tenantDB)

		c.Next()
	}
}

// RequireTenant ensures a tenant context exists
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, exists := c.Get(string(TenantIDKey))
		if !exists {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Tenant context required. Please access via your household subdomain (e.g., yourhouse.veganmealapp.io)",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetTenantID retrieves tenant ID from context
func GetTenantID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get(string(TenantIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := val.(uuid.UUID)
	return id, ok
}

// GetTenantSlug retrieves tenant slug from context
func GetTenantSlug(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(TenantSlugKey))
	if !exists {
		return "", false
	}
	slug, ok := val.(string)
	return slug, ok
}

// GetTenantDB retrieves the tenant database connection from context
func GetTenantDB(c *gin.Context) (*pgxpool.Pool, bool) {
	val, exists := c.Get(string(TenantDBKey))
	if !exists {
		return nil, false
	}
	db, ok := val.(*pgxpool.Pool)
	return db, ok
}

// GetTenant retrieves the full tenant object from context
func GetTenant(c *gin.Context) (*models.Tenant, bool) {
	val, exists := c.Get(string(TenantContextKey))
	if !exists {
		return nil, false
	}
	tenant, ok := val.(*models.Tenant)
	return tenant, ok
}

// ValidateSlug checks if a slug is valid
// Rules:
//   - 3-50 characters
//   - Lowercase letters, numbers, hyphens only
//   - Must start and end with letter or number
//   - Cannot have consecutive hyphens
func ValidateSlug(slug string) bool {
	if len(slug) < 3 || len(slug) > 50 {
		return false
	}

	if !slugRegex.MatchString(slug) {
		return false
	}

	// No consecutive hyphens
	if strings.Contains(slug, "--") {
		return false
	}

	return true
}
