package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/fetch"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/types"
)

// ownedApplication loads an application by path ID and verifies it belongs
// to the authenticated user. A nil return means the response was already
// written.
func (s *Server) ownedApplication(w http.ResponseWriter, r *http.Request) *types.JobApplication {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}

	appID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid application ID")
		return nil
	}

	app, err := s.db.GetApplication(r.Context(), appID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get application")
		return nil
	}
	if app == nil || app.UserID != userID {
		writeError(w, http.StatusNotFound, "Application not found")
		return nil
	}
	return app
}

// handleCreateApplication records a new tracked job application.
func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	status, _ := types.MapToApplicationStatus(req.Status)
	app := &types.JobApplication{
		UserID:         userID,
		Company:        req.Company,
		JobTitle:       req.JobTitle,
		JobURL:         req.JobURL,
		JobDescription: req.JobDescription,
		Status:         status,
		Notes:          req.Notes,
	}

	created, err := s.db.CreateApplication(r.Context(), app)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create application")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// handleListApplications lists the user's applications, optionally filtered
// by status and company query parameters.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	filters := db.ApplicationFilters{
		Company: r.URL.Query().Get("company"),
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, ok := types.MapToApplicationStatus(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid status filter")
			return
		}
		filters.Status = string(status)
	}

	apps, err := s.db.ListApplications(r.Context(), userID, filters)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list applications")
		return
	}
	if apps == nil {
		apps = []types.JobApplication{}
	}
	writeJSON(w, http.StatusOK, apps)
}

// handleGetApplication returns a single application.
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	app := s.ownedApplication(w, r)
	if app == nil {
		return
	}
	writeJSON(w, http.StatusOK, app)
}

// handleUpdateApplication applies a partial update to an application.
func (s *Server) handleUpdateApplication(w http.ResponseWriter, r *http.Request) {
	app := s.ownedApplication(w, r)
	if app == nil {
		return
	}

	var req types.UpdateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := s.db.UpdateApplication(r.Context(), app.ID, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "Application not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// handleDeleteApplication removes an application.
func (s *Server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	app := s.ownedApplication(w, r)
	if app == nil {
		return
	}

	if err := s.db.DeleteApplication(r.Context(), app.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete application")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleIngestApplication fetches the application's job posting URL,
// extracts the posting text, and stores it as the job description.
func (s *Server) handleIngestApplication(w http.ResponseWriter, r *http.Request) {
	app := s.ownedApplication(w, r)
	if app == nil {
		return
	}

	if app.JobURL == "" {
		writeError(w, http.StatusBadRequest, "Application has no job URL")
		return
	}

	text, err := fetch.JobPosting(r.Context(), app.JobURL)
	if err != nil {
		var fetchErr *fetch.Error
		if errors.As(err, &fetchErr) {
			writeError(w, http.StatusBadGateway, fetchErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to ingest job posting")
		return
	}

	if err := s.db.SetApplicationDescription(r.Context(), app.ID, text); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to store job description")
		return
	}

	updated, err := s.db.GetApplication(r.Context(), app.ID)
	if err != nil || updated == nil {
		writeError(w, http.StatusInternalServerError, "Failed to reload application")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
