package database

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/denerose/VeganMealAppApi-sub000/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TenantDBManager manages connections to tenant-specific databases
type TenantDBManager struct {
	platformDB *PlatformDB
	pools      sync.Map // map[tenantID]string -> *pgxpool.Pool
	mu         sync.Mutex
}

// NewTenantDBManager creates a new tenant database manager
func NewTenantDBManager(platformDB *PlatformDB) *TenantDBManager {
	return &TenantDBManager{
		platformDB: platformDB,
	}
}

// GetTenantDB retrieves or creates a connection pool for a tenant database
func (m *TenantDBManager) GetTenantDB(ctx context.Context, tenant *models.Tenant) (*pgxpool.Pool, error) {
	// Check if pool already exists
	if pool, ok := m.pools.Load(tenant.ID.String()); ok {
		return pool.(*pgxpool.Pool), nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring lock
	if pool, ok := m.pools.Load(tenant.ID.String()); ok {
		return pool.(*pgxpool.Pool), nil
	}

	// TODO: decrypt db_password_encrypted per tenant instead of the shared
	// TENANT_DB_PASSWORD credential.
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		tenant.DBUser,
		os.Getenv("TENANT_DB_PASSWORD"),
		tenant.DBHost,
		tenant.DBPort,
		tenant.DBName,
	)

	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tenant DB config for %s: %w", tenant.Slug, err)
	}

	// Connection pool settings for tenant databases
	config.MaxConns = 25
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant DB pool for %s: %w", tenant.Slug, err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping tenant DB for %s: %w", tenant.Slug, err)
	}

	// Store in cache
	m.pools.Store(tenant.ID.String(), pool)

	return pool, nil
}

// GetTenantDBBySlug is a convenience method that looks up the tenant and gets its DB
func (m *TenantDBManager) GetTenantDBBySlug(ctx context.Context, slug string) (*pgxpool.Pool, *models.Tenant, error) {
	// Look up tenant from platform database
	tenant, err := m.platformDB.GetTenantBySlug(ctx, slug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get tenant by slug: %w", err)
	}

	// Get or create connection pool
	pool, err := m.GetTenantDB(ctx, tenant)
	if err != nil {
		return nil, nil, err
	}

	// Update last activity
	go func() {
		ctx := context.Background()
		_ = m.platformDB.UpdateTenantLastActivity(ctx, tenant.ID.String())
	}()

	return pool, tenant, nil
}

// Close closes all tenant database connections
func (m *TenantDBManager) Close() {
	m.pools.Range(func(key, value interface{}) bool {
		if pool, ok := value.(*pgxpool.Pool); ok {
			pool.Close()
		}
		m.pools.Delete(key)
		return true
	})
}

// PoolStats returns statistics about connection pools
func (m *TenantDBManager) PoolStats() map[string]interface{} {
	stats := make(map[string]interface{})
	count := 0

	m.pools.Range(func(key, value interface{}) bool {
		count++
		if pool, ok := value.(*pgxpool.Pool); ok {
			poolStats := pool.Stat()
			stats[key.(string)] = map[string]interface{}{
				"acquired_conns": poolStats.AcquiredConns(),
				"idle_conns":     poolStats.IdleConns(),
				"total_conns":    poolStats.TotalConns(),
				"max_conns":      poolStats.MaxConns(),
			}
		}
		return true
	})

	stats["total_pools"] = count
	return stats
}
