package repositories

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/rohits-web03/ideaforge/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func mustUser(t *testing.T, users *UserRepository, username string) *models.User {
	t.Helper()
	u, err := users.Create(context.Background(), username, nil, "pw-"+username)
	require.NoError(t, err)
	return u
}

func strPtr(s string) *string { return &s }

func mustIdea(t *testing.T, ideas *IdeaRepository, owner *models.User, title, industry string) *models.Idea {
	t.Helper()
	in := models.IdeaCreate{Title: title, Description: strPtr("desc of " + title)}
	if industry != "" {
		in.Industry = strPtr(industry)
	}
	idea, err := ideas.Create(context.Background(), owner.ID, in)
	require.NoError(t, err)
	return idea
}
