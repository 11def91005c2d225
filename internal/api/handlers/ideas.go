package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rohits-web03/ideaforge/internal/generator"
	"github.com/rohits-web03/ideaforge/internal/models"
	"github.com/rohits-web03/ideaforge/internal/repositories"
	"github.com/rohits-web03/ideaforge/internal/utils"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 10
	defaultNumIdeas  = 1
)

type GenerateRequest struct {
	Keywords string `json:"keywords"`
	Industry string `json:"industry"`
	NumIdeas *int   `json:"num_ideas,omitempty"`
}

type FavoriteResponse struct {
	Idea       *models.Idea `json:"idea"`
	IsFavorite bool         `json:"is_favorite"`
}

type IdeaHandler struct {
	ideas     *repositories.IdeaRepository
	history   *repositories.SearchHistoryRepository
	generator generator.Generator
	log       *zap.SugaredLogger
}

func NewIdeaHandler(ideas *repositories.IdeaRepository, history *repositories.SearchHistoryRepository, gen generator.Generator, log *zap.SugaredLogger) *IdeaHandler {
	return &IdeaHandler{
		ideas:     ideas,
		history:   history,
		generator: gen,
		log:       log,
	}
}

// Generate godoc
// @Summary Generate and store business ideas
// @Description Asks the idea provider for num_ideas ideas, stores the ones it produced and records the search.
// @Tags Ideas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body handlers.GenerateRequest true "Generation request"
// @Success 200 {array} models.Idea
// @Failure 400 {object} utils.Payload "Invalid input"
// @Failure 500 {object} utils.Payload "Error generating ideas"
// @Router /api/v1/ideas/generate [post]
func (h *IdeaHandler) Generate(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}
	req.Keywords = strings.TrimSpace(req.Keywords)
	req.Industry = strings.TrimSpace(req.Industry)
	if req.Keywords == "" || req.Industry == "" {
		utils.Error(w, http.StatusBadRequest, "Keywords and industry required")
		return
	}
	numIdeas := defaultNumIdeas
	if req.NumIdeas != nil {
		numIdeas = *req.NumIdeas
	}
	if numIdeas < 1 {
		utils.Error(w, http.StatusBadRequest, "num_ideas must be at least 1")
		return
	}

	ctx := r.Context()
	generated, err := h.generator.Generate(ctx, req.Keywords, req.Industry, numIdeas)
	if err != nil {
		h.log.Errorw("idea generation failed", "user_id", user.ID, "err", err)
		utils.Error(w, http.StatusInternalServerError, "Error generating ideas: "+err.Error())
		return
	}

	created := make([]models.Idea, 0, len(generated))
	for _, g := range generated {
		if g.Error != "" {
			h.log.Warnw("skipping failed idea", "user_id", user.ID, "reason", g.Error)
			continue
		}
		idea, err := h.ideas.Create(ctx, user.ID, ideaCreate(g, req.Industry))
		if err != nil {
			h.log.Errorw("storing idea failed", "user_id", user.ID, "err", err)
			utils.Error(w, http.StatusInternalServerError, "Error generating ideas: "+err.Error())
			return
		}
		created = append(created, *idea)
	}

	if _, err := h.history.Create(ctx, user.ID, req.Keywords, req.Industry, numIdeas); err != nil {
		h.log.Errorw("recording search failed", "user_id", user.ID, "err", err)
		utils.Error(w, http.StatusInternalServerError, "Error generating ideas: "+err.Error())
		return
	}

	h.log.Infow("ideas generated", "user_id", user.ID, "requested", numIdeas, "created", len(created))
	utils.JSON(w, http.StatusOK, created)
}

func ideaCreate(g generator.Idea, industry string) models.IdeaCreate {
	return models.IdeaCreate{
		Title:           g.Title,
		Description:     optional(g.Description),
		BusinessModel:   optional(g.BusinessModel),
		TargetAudience:  optional(g.TargetAudience),
		SwotAnalysis:    optional(g.SwotAnalysis),
		MarketPotential: optional(g.MarketPotential),
		Industry:        &industry,
		Keywords:        optional(g.Keywords),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// List godoc
// @Summary List the caller's ideas
// @Tags Ideas
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} models.Idea
// @Failure 400 {object} utils.Payload "Invalid paging parameters"
// @Router /api/v1/ideas/ [get]
func (h *IdeaHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid skip parameter")
		return
	}
	limit, err := queryInt(r, "limit", defaultListLimit)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid limit parameter")
		return
	}

	ideas, err := h.ideas.ListByUser(r.Context(), user.ID, skip, limit)
	if err != nil {
		h.log.Errorw("listing ideas failed", "user_id", user.ID, "err", err)
		utils.Error(w, http.StatusInternalServerError, "Error fetching ideas: "+err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, ideas)
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, errors.New(key + " must not be negative")
	}
	return v, nil
}

// Get godoc
// @Summary Fetch one idea
// @Tags Ideas
// @Produce json
// @Security BearerAuth
// @Param id path string true "Idea ID"
// @Success 200 {object} models.Idea
// @Failure 404 {object} utils.Payload "Idea not found"
// @Router /api/v1/ideas/{id} [get]
func (h *IdeaHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := ideaID(w, r)
	if !ok {
		return
	}

	idea, err := h.ideas.GetByID(r.Context(), id, user.ID)
	if err != nil {
		h.writeIdeaError(w, err, "Error fetching idea: ")
		return
	}
	utils.JSON(w, http.StatusOK, idea)
}

// Update godoc
// @Summary Partially update an idea
// @Description Only the fields present in the body are changed. Unknown fields are ignored.
// @Tags Ideas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Idea ID"
// @Param body body object true "Fields to change"
// @Success 200 {object} models.Idea
// @Failure 400 {object} utils.Payload "Invalid input"
// @Failure 404 {object} utils.Payload "Idea not found"
// @Router /api/v1/ideas/{id} [put]
func (h *IdeaHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := ideaID(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}
	update, ignored, err := models.DecodeIdeaUpdate(body)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if len(ignored) > 0 {
		h.log.Debugw("ignoring non-updatable idea fields", "idea_id", id, "fields", ignored)
	}

	idea, err := h.ideas.Update(r.Context(), id, user.ID, update)
	if err != nil {
		h.writeIdeaError(w, err, "Error updating idea: ")
		return
	}
	utils.JSON(w, http.StatusOK, idea)
}

// Delete godoc
// @Summary Delete an idea
// @Tags Ideas
// @Produce json
// @Security BearerAuth
// @Param id path string true "Idea ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} utils.Payload "Idea not found"
// @Router /api/v1/ideas/{id} [delete]
func (h *IdeaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := ideaID(w, r)
	if !ok {
		return
	}

	if err := h.ideas.Delete(r.Context(), id, user.ID); err != nil {
		h.writeIdeaError(w, err, "Error deleting idea: ")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Idea deleted successfully"})
}

// ToggleFavorite godoc
// @Summary Flip the favorite flag of an idea
// @Tags Ideas
// @Produce json
// @Security BearerAuth
// @Param id path string true "Idea ID"
// @Success 200 {object} handlers.FavoriteResponse
// @Failure 404 {object} utils.Payload "Idea not found"
// @Router /api/v1/ideas/{id}/favorite [post]
func (h *IdeaHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := ideaID(w, r)
	if !ok {
		return
	}

	idea, err := h.ideas.ToggleFavorite(r.Context(), id, user.ID)
	if err != nil {
		h.writeIdeaError(w, err, "Error updating idea: ")
		return
	}
	utils.JSON(w, http.StatusOK, FavoriteResponse{Idea: idea, IsFavorite: idea.IsFavorite})
}

func (h *IdeaHandler) writeIdeaError(w http.ResponseWriter, err error, prefix string) {
	if errors.Is(err, repositories.ErrNotFound) {
		utils.Error(w, http.StatusNotFound, "Idea not found")
		return
	}
	h.log.Errorw("idea operation failed", "err", err)
	utils.Error(w, http.StatusInternalServerError, prefix+err.Error())
}
