package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rohits-web03/ideaforge/internal/logger"
	"github.com/rohits-web03/ideaforge/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsHandler(t *testing.T) {
	db := openTestDB(t)
	users := repositories.NewUserRepository(db)
	ideas := repositories.NewIdeaRepository(db)
	history := repositories.NewSearchHistoryRepository(db)
	h := NewAnalyticsHandler(repositories.NewAnalyticsRepository(db), ideas, history, logger.Nop())

	alice := mustUser(t, users, "alice")
	bob := mustUser(t, users, "bob")

	fav := mustIdea(t, ideas, alice, "Gym finder", "health", "fitness")
	mustIdea(t, ideas, alice, "Diet coach", "health", "fitness")
	mustIdea(t, ideas, alice, "Code review bot", "tech", "ai")
	mustIdea(t, ideas, bob, "Bob's idea", "tech", "ai")
	_, err := ideas.ToggleFavorite(t.Context(), fav.ID, alice.ID)
	require.NoError(t, err)

	for i := 0; i < 12; i++ {
		_, err := history.Create(t.Context(), alice.ID, "fitness", "health", 1)
		require.NoError(t, err)
	}

	t.Run("user", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.User(w, asUser(alice, http.MethodGet, "/analytics/user", nil))
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[UserAnalyticsResponse](t, w)
		assert.EqualValues(t, 3, resp.TotalIdeas)
		assert.EqualValues(t, 1, resp.FavoriteIdeas)
		assert.Equal(t, alice.ID, resp.UserID)
		assert.Len(t, resp.SearchHistory, recentSearches)
	})

	t.Run("platform", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Platform(w, asUser(bob, http.MethodGet, "/analytics/platform", nil))
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[repositories.PlatformSummary](t, w)
		assert.EqualValues(t, 2, resp.TotalUsers)
		assert.EqualValues(t, 4, resp.TotalIdeas)
		require.Len(t, resp.PopularIndustries, 2)
		assert.EqualValues(t, 2, resp.PopularIndustries[0].Count)
	})

	t.Run("industries", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Industries(w, asUser(alice, http.MethodGet, "/analytics/user/industries", nil))
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[IndustriesResponse](t, w)
		require.Len(t, resp.Industries, 2)
		require.NotNil(t, resp.Industries[0].Industry)
		assert.Equal(t, "health", *resp.Industries[0].Industry)
		assert.EqualValues(t, 2, resp.Industries[0].Count)
	})

	t.Run("favorites", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Favorites(w, asUser(alice, http.MethodGet, "/analytics/user/favorites", nil))
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[FavoritesResponse](t, w)
		assert.Equal(t, 1, resp.FavoriteCount)
		require.Len(t, resp.Favorites, 1)
		assert.Equal(t, fav.ID, resp.Favorites[0].ID)
		assert.Equal(t, "Gym finder", resp.Favorites[0].Title)
	})

	t.Run("favorites empty", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Favorites(w, asUser(bob, http.MethodGet, "/analytics/user/favorites", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"favorite_count":0,"favorites":[]}`, w.Body.String())
	})

	t.Run("trends", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Trends(w, asUser(alice, http.MethodGet, "/analytics/user/trends", nil))
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[repositories.Trends](t, w)
		require.NotEmpty(t, resp.PopularKeywords)
		assert.Equal(t, "fitness", resp.PopularKeywords[0].Keyword)
		assert.EqualValues(t, 12, resp.PopularKeywords[0].Count)
		require.Len(t, resp.PopularIndustries, 1)
		assert.EqualValues(t, 12, resp.PopularIndustries[0].Count)
	})
}
