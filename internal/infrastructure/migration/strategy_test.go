package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ridecrew/ridecrew/internal/shared/constants"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

func TestForDriver(t *testing.T) {
	assert.Equal(t, "gorm_auto_migrate", ForDriver("sqlite", logger.NewNopLogger()).GetName())
	assert.Equal(t, "goose", ForDriver("mysql", logger.NewNopLogger()).GetName())
}

func TestEmbeddedScriptsCoverEveryTable(t *testing.T) {
	entries, err := fs.ReadDir(embeddedScripts, embeddedDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	var all strings.Builder
	for _, e := range entries {
		b, err := fs.ReadFile(embeddedScripts, embeddedDir+"/"+e.Name())
		require.NoError(t, err)
		all.Write(b)
	}
	script := all.String()

	tables := []string{
		constants.TableUsers, constants.TableSessions, constants.TableUserFollows,
		constants.TableClubs, constants.TableClubFollows, constants.TableClubJoinRequests,
		constants.TablePosts, constants.TablePostImages, constants.TablePostComments, constants.TablePostLikes,
		constants.TableHikes, constants.TableTrips, constants.TableHikeHypes, constants.TableHikeImages,
		constants.TableBicycles, constants.TableSubs,
	}
	for _, table := range tables {
		assert.Contains(t, script, "CREATE TABLE "+table+" (", table)
		assert.Contains(t, script, "DROP TABLE IF EXISTS "+table+";", table)
	}
}

func TestGormAutoMigrateStrategy(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	s := NewGormAutoMigrateStrategy(logger.NewNopLogger())
	require.NoError(t, s.Migrate(db))

	for _, table := range []string{constants.TableUsers, constants.TableClubJoinRequests, constants.TableSubs} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex(constants.TableClubJoinRequests, "uk_club_join_request"))

	require.NoError(t, s.Migrate(db), "auto migration is re-runnable")
}
