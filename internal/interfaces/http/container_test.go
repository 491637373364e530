package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ridecrew/ridecrew/internal/infrastructure/config"
	"github.com/ridecrew/ridecrew/internal/infrastructure/migration"
	sharedConfig "github.com/ridecrew/ridecrew/internal/shared/config"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

func newTestContainer(t *testing.T) *Container {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	log := logger.NewNopLogger()
	require.NoError(t, migration.ForDriver("sqlite", log).Migrate(database))

	cfg := &config.Config{
		Server:   sharedConfig.ServerConfig{Mode: "test"},
		Database: sharedConfig.DatabaseConfig{Driver: "sqlite"},
	}
	container, err := NewContainer(database, cfg, log)
	require.NoError(t, err)
	require.NoError(t, container.SetupRoutes())
	t.Cleanup(func() { container.Shutdown(context.Background()) })
	return container
}

func serve(c *Container, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c.Engine().ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestContainer_WiresRoutes(t *testing.T) {
	container := newTestContainer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"public department catalog", http.MethodGet, "/geo/departments", http.StatusOK},
		{"feed requires auth", http.MethodGet, "/feed", http.StatusUnauthorized},
		{"club creation requires auth", http.MethodPost, "/clubs", http.StatusUnauthorized},
		{"billing requires auth", http.MethodGet, "/billing/entitlement", http.StatusUnauthorized},
		{"admin requires auth", http.MethodGet, "/admin/users", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(container, tt.method, tt.path)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestContainer_HealthReportsDatabaseOutage(t *testing.T) {
	container := newTestContainer(t)

	sqlDB, err := container.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w := serve(container, http.MethodGet, "/health")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
