package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rohits-web03/ideaforge/internal/logger"
	"github.com/rohits-web03/ideaforge/internal/models"
	"github.com/rohits-web03/ideaforge/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokens map[string]string

func (f fakeTokens) DecodeToken(token string) (string, bool) {
	username, ok := f[token]
	return username, ok
}

type fakeUsers map[string]*models.User

func (f fakeUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if u, ok := f[username]; ok {
		return u, nil
	}
	return nil, repositories.ErrNotFound
}

func TestAuthMiddleware(t *testing.T) {
	alice := &models.User{ID: uuid.New(), Username: "alice"}
	tokens := fakeTokens{"good": "alice", "orphan": "bob"}
	users := fakeUsers{"alice": alice}

	var seen *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = CurrentUser(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	h := AuthMiddleware(tokens, users, logger.Nop())(next)

	tests := []struct {
		name    string
		method  string
		header  string
		status  int
		message string
	}{
		{name: "missing header", method: http.MethodGet, status: http.StatusUnauthorized, message: "Not authenticated"},
		{name: "one part", method: http.MethodGet, header: "good", status: http.StatusUnauthorized, message: "Invalid token format"},
		{name: "three parts", method: http.MethodGet, header: "Bearer good extra", status: http.StatusUnauthorized, message: "Invalid token format"},
		{name: "basic scheme", method: http.MethodGet, header: "Basic good", status: http.StatusUnauthorized, message: "Invalid authentication scheme"},
		{name: "bad token", method: http.MethodGet, header: "Bearer nope", status: http.StatusUnauthorized, message: "Invalid or expired token"},
		{name: "unknown user", method: http.MethodGet, header: "Bearer orphan", status: http.StatusNotFound, message: "User not found"},
		{name: "valid", method: http.MethodGet, header: "Bearer good", status: http.StatusNoContent},
		{name: "lowercase scheme", method: http.MethodGet, header: "bearer good", status: http.StatusNoContent},
		{name: "preflight", method: http.MethodOptions, status: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(tt.method, "/ideas/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.message != "" {
				var body map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.message, body["message"])
				assert.Nil(t, seen)
			}
			if tt.header != "" && tt.status == http.StatusNoContent {
				require.NotNil(t, seen)
				assert.Equal(t, alice.ID, seen.ID)
			}
		})
	}
}

func TestCurrentUser_Absent(t *testing.T) {
	_, ok := CurrentUser(context.Background())
	assert.False(t, ok)
}
