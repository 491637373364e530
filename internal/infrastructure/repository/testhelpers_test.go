package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/infrastructure/persistence/models"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every statement on the same in-memory database.
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(models.All()...))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return database
}

func createTestUser(t *testing.T, repo *UserRepository, email string) *user.User {
	t.Helper()
	u, err := user.NewUser(email, "Anne", "Rider", "$2a$10$hash")
	require.NoError(t, err)
	require.NoError(t, repo.Create(t.Context(), u))
	return u
}

func createTestClub(t *testing.T, repo *ClubRepository, name string) *club.Club {
	t.Helper()
	c, err := club.NewClub(club.Details{
		Name:             name,
		OrganizationType: club.OrganizationAssociation,
		Address:          club.Address{City: "Lyon", Department: "69"},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(t.Context(), c))
	return c
}

func inDays(n int) time.Time {
	return time.Now().UTC().Add(time.Duration(n) * 24 * time.Hour).Truncate(time.Second)
}

func nopLogger() logger.Interface {
	return logger.NewNopLogger()
}
