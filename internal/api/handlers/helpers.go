package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rohits-web03/ideaforge/internal/api/middleware"
	"github.com/rohits-web03/ideaforge/internal/models"
	"github.com/rohits-web03/ideaforge/internal/utils"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

// requireUser returns the authenticated user or writes a 401.
func requireUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Not authenticated")
		return nil, false
	}
	return user, true
}

// ideaID parses the {id} path value. Ids that are not UUIDs can never name a
// stored idea, so they are reported the same way as a missing one.
func ideaID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Idea not found")
		return uuid.Nil, false
	}
	return id, true
}
