package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/ideaforge/internal/export"
	"github.com/rohits-web03/ideaforge/internal/models"
	"github.com/rohits-web03/ideaforge/internal/repositories"
	"github.com/rohits-web03/ideaforge/internal/utils"
	"go.uber.org/zap"
)

// Archiver keeps a copy of a rendered export and returns a link to it.
type Archiver interface {
	Archive(ctx context.Context, key, contentType string, data []byte) (string, error)
}

type ExportHandler struct {
	ideas    *repositories.IdeaRepository
	renderer export.Renderer
	archive  Archiver
	log      *zap.SugaredLogger
}

// NewExportHandler builds the export endpoints. archive may be nil.
func NewExportHandler(ideas *repositories.IdeaRepository, renderer export.Renderer, archive Archiver, log *zap.SugaredLogger) *ExportHandler {
	return &ExportHandler{
		ideas:    ideas,
		renderer: renderer,
		archive:  archive,
		log:      log,
	}
}

// ExportIdea godoc
// @Summary Download one idea as a business plan PDF
// @Tags Export
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Idea ID"
// @Success 200 {file} binary
// @Header 200 {string} X-Export-Url "Link to the archived copy, when archiving is enabled"
// @Failure 404 {object} utils.Payload "Idea not found"
// @Failure 500 {object} utils.Payload "Error generating PDF"
// @Router /api/v1/pdf/export/{id} [get]
func (h *ExportHandler) ExportIdea(w http.ResponseWriter, r *http.Request) {
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
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Idea not found")
			return
		}
		h.log.Errorw("export lookup failed", "idea_id", id, "err", err)
		utils.Error(w, http.StatusInternalServerError, "Error generating PDF: "+err.Error())
		return
	}

	h.send(w, r, user.ID, export.FromIdea(*idea), export.IdeaFilename(*idea))
}

// ExportMultiple godoc
// @Summary Download a combined summary PDF for several ideas
// @Description Ids that are unknown or belong to someone else are skipped.
// @Tags Export
// @Accept json
// @Produce application/pdf
// @Security BearerAuth
// @Param body body []string true "Idea IDs"
// @Success 200 {file} binary
// @Failure 400 {object} utils.Payload "Invalid input"
// @Failure 404 {object} utils.Payload "No ideas found"
// @Router /api/v1/pdf/export-multiple [post]
func (h *ExportHandler) ExportMultiple(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var rawIDs []string
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&rawIDs); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ideas := make([]models.Idea, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		idea, err := h.ideas.GetByID(r.Context(), id, user.ID)
		if errors.Is(err, repositories.ErrNotFound) {
			continue
		}
		if err != nil {
			h.log.Errorw("export lookup failed", "idea_id", id, "err", err)
			utils.Error(w, http.StatusInternalServerError, "Error generating PDF: "+err.Error())
			return
		}
		ideas = append(ideas, *idea)
	}
	if len(ideas) == 0 {
		utils.Error(w, http.StatusNotFound, "No ideas found")
		return
	}

	h.send(w, r, user.ID, export.Combined(ideas), export.CombinedFilename(len(ideas)))
}

func (h *ExportHandler) send(w http.ResponseWriter, r *http.Request, userID uuid.UUID, doc export.Document, filename string) {
	data, err := h.renderer.Render(doc)
	if err != nil {
		h.log.Errorw("pdf render failed", "user_id", userID, "err", err)
		utils.Error(w, http.StatusInternalServerError, "Error generating PDF: "+err.Error())
		return
	}

	if h.archive != nil {
		key := fmt.Sprintf("exports/%s/%d_%s", userID, time.Now().Unix(), filename)
		link, err := h.archive.Archive(r.Context(), key, h.renderer.ContentType(), data)
		if err != nil {
			// The download itself does not depend on the archive.
			h.log.Warnw("export archive failed", "key", key, "err", err)
		} else {
			w.Header().Set("X-Export-Url", link)
		}
	}

	w.Header().Set("Content-Type", h.renderer.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.log.Warnw("writing export failed", "user_id", userID, "err", err)
	}
}
