package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ridecrew/ridecrew/internal/domain/permission"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

func setupEnforcer(t *testing.T) *Enforcer {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	e, err := NewEnforcer(db, logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, e.SeedPolicies(permission.DefaultPolicies()))
	return e
}

func TestEnforcer_DefaultPolicies(t *testing.T) {
	e := setupEnforcer(t)

	tests := []struct {
		subject  string
		resource permission.Resource
		action   permission.Action
		want     bool
	}{
		{"admin", permission.ResourceClubs, permission.ActionDelete, true},
		{"admin", permission.ResourcePosts, permission.ActionDelete, true},
		{"admin", permission.ResourceUsers, permission.ActionRead, true},
		{"user", permission.ResourceClubs, permission.ActionDelete, false},
		{"user", permission.ResourceUsers, permission.ActionRead, false},
		{"admin", permission.ResourceUsers, permission.ActionDelete, false},
	}

	for _, tt := range tests {
		allowed, err := e.Enforce(tt.subject, tt.resource, tt.action)
		require.NoError(t, err)
		assert.Equal(t, tt.want, allowed, "%s %s %s", tt.subject, tt.action, tt.resource)
	}
}

func TestEnforcer_SeedIsIdempotentAndRolesInherit(t *testing.T) {
	e := setupEnforcer(t)
	require.NoError(t, e.SeedPolicies(permission.DefaultPolicies()))

	require.NoError(t, e.AddRoleForUser("user:42", "admin"))
	allowed, err := e.Enforce("user:42", permission.ResourceClubs, permission.ActionDelete)
	require.NoError(t, err)
	assert.True(t, allowed)

	require.NoError(t, e.LoadPolicy())
	allowed, err = e.Enforce("user:42", permission.ResourcePosts, permission.ActionDelete)
	require.NoError(t, err)
	assert.True(t, allowed, "policies persist through the gorm adapter")
}
