package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rohits-web03/ideaforge/internal/api/middleware"
	"github.com/rohits-web03/ideaforge/internal/auth"
	"github.com/rohits-web03/ideaforge/internal/models"
	"github.com/rohits-web03/ideaforge/internal/repositories"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, repositories.Migrate(db))
	return db
}

func newTokens(t *testing.T) *auth.TokenManager {
	t.Helper()
	tokens, err := auth.NewTokenManager("handler-test-secret", "HS256", time.Hour)
	require.NoError(t, err)
	return tokens
}

func mustUser(t *testing.T, users *repositories.UserRepository, username string) *models.User {
	t.Helper()
	u, err := users.Create(context.Background(), username, nil, "pw-"+username)
	require.NoError(t, err)
	return u
}

func mustIdea(t *testing.T, ideas *repositories.IdeaRepository, owner *models.User, title, industry, keywords string) *models.Idea {
	t.Helper()
	idea, err := ideas.Create(context.Background(), owner.ID, models.IdeaCreate{
		Title:       title,
		Description: optional("about " + title),
		Industry:    optional(industry),
		Keywords:    optional(keywords),
	})
	require.NoError(t, err)
	return idea
}

// asUser builds a request that already passed the authentication gate.
func asUser(user *models.User, method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(middleware.WithUser(req.Context(), user))
}

func withID(req *http.Request, id string) *http.Request {
	req.SetPathValue("id", id)
	return req
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decode[map[string]any](t, w)
	msg, _ := body["message"].(string)
	return msg
}
