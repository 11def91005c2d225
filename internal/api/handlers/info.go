package handlers

import (
	"net/http"

	"github.com/rohits-web03/ideaforge/internal/config"
	"github.com/rohits-web03/ideaforge/internal/utils"
)

// Health godoc
// @Summary Liveness probe
// @Tags Info
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{
		"status":      "healthy",
		"application": config.ProjectName,
		"version":     config.Version,
	})
}

// Root godoc
// @Summary Service banner
// @Tags Info
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func Root(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to " + config.ProjectName,
		"version": config.Version,
		"docs":    "/docs/",
		"api_v1":  "/api/v1",
	})
}

// APIInfo godoc
// @Summary List the v1 endpoint groups
// @Tags Info
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/v1 [get]
func APIInfo(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]any{
		"version": "v1",
		"endpoints": map[string]string{
			"auth":      "/api/v1/auth",
			"ideas":     "/api/v1/ideas",
			"analytics": "/api/v1/analytics",
			"pdf":       "/api/v1/pdf",
			"users":     "/api/v1/users",
		},
		"documentation": "/docs/",
	})
}
