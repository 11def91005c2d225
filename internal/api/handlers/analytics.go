package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/ideaforge/internal/models"
	"github.com/rohits-web03/ideaforge/internal/repositories"
	"github.com/rohits-web03/ideaforge/internal/utils"
	"go.uber.org/zap"
)

// recentSearches is how many history entries the user summary carries.
const recentSearches = 10

type UserAnalyticsResponse struct {
	repositories.UserSummary
	SearchHistory []models.SearchHistory `json:"search_history"`
}

type IndustriesResponse struct {
	Industries []repositories.IndustryCount `json:"industries"`
}

type FavoriteSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Industry  *string   `json:"industry"`
	CreatedAt time.Time `json:"created_at"`
}

type FavoritesResponse struct {
	FavoriteCount int               `json:"favorite_count"`
	Favorites     []FavoriteSummary `json:"favorites"`
}

type AnalyticsHandler struct {
	analytics *repositories.AnalyticsRepository
	ideas     *repositories.IdeaRepository
	history   *repositories.SearchHistoryRepository
	log       *zap.SugaredLogger
}

func NewAnalyticsHandler(analytics *repositories.AnalyticsRepository, ideas *repositories.IdeaRepository, history *repositories.SearchHistoryRepository, log *zap.SugaredLogger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		ideas:     ideas,
		history:   history,
		log:       log,
	}
}

// User godoc
// @Summary Personal idea statistics
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.UserAnalyticsResponse
// @Router /api/v1/analytics/user [get]
func (h *AnalyticsHandler) User(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	summary, err := h.analytics.UserSummary(r.Context(), user.ID)
	if err != nil {
		h.fail(w, user.ID, err)
		return
	}
	history, err := h.history.ListByUser(r.Context(), user.ID, recentSearches)
	if err != nil {
		h.fail(w, user.ID, err)
		return
	}

	utils.JSON(w, http.StatusOK, UserAnalyticsResponse{
		UserSummary:   summary,
		SearchHistory: history,
	})
}

// Platform godoc
// @Summary Platform wide statistics
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} repositories.PlatformSummary
// @Router /api/v1/analytics/platform [get]
func (h *AnalyticsHandler) Platform(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	summary, err := h.analytics.Platform(r.Context())
	if err != nil {
		h.fail(w, user.ID, err)
		return
	}
	utils.JSON(w, http.StatusOK, summary)
}

// Industries godoc
// @Summary Idea count per industry for the caller
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.IndustriesResponse
// @Router /api/v1/analytics/user/industries [get]
func (h *AnalyticsHandler) Industries(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	industries, err := h.analytics.IndustryBreakdown(r.Context(), user.ID)
	if err != nil {
		h.fail(w, user.ID, err)
		return
	}
	utils.JSON(w, http.StatusOK, IndustriesResponse{Industries: industries})
}

// Favorites godoc
// @Summary The caller's favorite ideas
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.FavoritesResponse
// @Router /api/v1/analytics/user/favorites [get]
func (h *AnalyticsHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	ideas, err := h.ideas.ListFavorites(r.Context(), user.ID)
	if err != nil {
		h.fail(w, user.ID, err)
		return
	}

	favorites := make([]FavoriteSummary, 0, len(ideas))
	for _, idea := range ideas {
		favorites = append(favorites, FavoriteSummary{
			ID:        idea.ID,
			Title:     idea.Title,
			Industry:  idea.Industry,
			CreatedAt: idea.CreatedAt,
		})
	}
	utils.JSON(w, http.StatusOK, FavoritesResponse{
		FavoriteCount: len(favorites),
		Favorites:     favorites,
	})
}

// Trends godoc
// @Summary Most frequent keywords and industries in the caller's ideas
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} repositories.Trends
// @Router /api/v1/analytics/user/trends [get]
func (h *AnalyticsHandler) Trends(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	trends, err := h.analytics.Trends(r.Context(), user.ID)
	if err != nil {
		h.fail(w, user.ID, err)
		return
	}
	utils.JSON(w, http.StatusOK, trends)
}

func (h *AnalyticsHandler) fail(w http.ResponseWriter, userID uuid.UUID, err error) {
	h.log.Errorw("analytics query failed", "user_id", userID, "err", err)
	utils.Error(w, http.StatusInternalServerError, "Error fetching analytics: "+err.Error())
}
