package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denerose/VeganMealAppApi-sub000/internal/auth"
	"github.com/denerose/VeganMealAppApi-sub000/internal/database"
	"github.com/denerose/VeganMealAppApi-sub000/internal/handlers"
	"github.com/denerose/VeganMealAppApi-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

var Version = "dev"

func main() {
	ctx := context.Background()

	// Configuration from environment
	platformDBURL := os.Getenv("PLATFORM_DATABASE_URL")
	if platformDBURL == "" {
		log.Fatal("PLATFORM_DATABASE_URL is required")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	baseDomain := os.Getenv("BASE_DOMAIN")
	if baseDomain == "" {
		baseDomain = "veganmealapp.io"
	}

	// Platform routing DB and per-tenant pool manager
	platformDB, err := database.NewPlatformDB(ctx, platformDBURL)
	if err != nil {
		log.Fatalf("Failed to connect to platform DB: %v", err)
	}
	defer platformDB.Close()

	tenantDBs := database.NewTenantDBManager(platformDB)
	defer tenantDBs.Close()

	jwtService := auth.NewJWTService(jwtSecret, "veganmealapp-api")

	// Initialize Gin
	r := gin.Default()
	r.Use(middleware.TenantMiddleware(tenantDBs, baseDomain))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := platformDB.Health(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": Version,
		})
	})

	// Version endpoint
	r.GET("/api/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version": Version,
			"service": "veganmealapp-api",
		})
	})

	// Root endpoint
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Vegan Meal App API",
			"version": Version,
			"docs":    "/api/docs",
		})
	})

	// Tenant-scoped routes
	api := r.Group("/api", middleware.RequireTenant())
	api.POST("/auth/login", handlers.Login(jwtService))

	protected := api.Group("", middleware.RequireAuth(jwtService))
	{
		protected.GET("/meals", handlers.ListMeals)
		protected.POST("/meals", handlers.CreateMeal)
		protected.PATCH("/meals/:id/qualities", handlers.UpdateMealQualities)
		protected.POST("/meals/:id/archive", handlers.ArchiveMeal)
		protected.GET("/meals/eligible", handlers.EligibleMeals)
		protected.GET("/meals/random", handlers.RandomMeal)

		protected.POST("/plans", handlers.CreatePlan)
		protected.GET("/plans", handlers.GetPlanByStartDate)
		protected.GET("/plans/:id", handlers.GetPlan)
		protected.PUT("/plans/:id/meals", handlers.AssignMeal)
		protected.POST("/plans/:id/leftovers", handlers.PopulateLeftovers)
		protected.DELETE("/plans/:id", handlers.DeletePlan)

		protected.GET("/settings/meal-preferences", handlers.GetMealPreferences)
		protected.PUT("/settings/meal-preferences", handlers.UpdateMealPreferences)
	}

	// Server configuration
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Server shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited")
}
