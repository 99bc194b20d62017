package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/fetch"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/types"
)

// TailorRequest is the payload for tailoring a resume to a job application.
type TailorRequest struct {
	JobApplicationID string `json:"job_application_id" validate:"required,uuid"`
}

// TailorResponse carries the tailored resume alongside its stored record ID.
type TailorResponse struct {
	Resume      *types.ResumeDocument `json:"resume"`
	CoverLetter string                `json:"cover_letter"`
	ResumeID    uuid.UUID             `json:"resume_id"`
}

// handleTailorResume runs the tailoring pipeline for a job application. The
// master resume is read-only input; a tailored document is stored as a new
// resume and linked to the application only after the whole pipeline
// succeeds.
func (s *Server) handleTailorResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req TailorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}
	appID, err := uuid.Parse(req.JobApplicationID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid job_application_id")
		return
	}

	// The application and the master resume live in separate rows; load
	// them concurrently.
	var app *types.JobApplication
	var master *db.Resume
	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		app, err = s.db.GetApplication(gctx, appID)
		return err
	})
	g.Go(func() error {
		var err error
		master, err = s.db.GetMasterResume(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load tailoring inputs")
		return
	}

	if app == nil || app.UserID != userID {
		writeError(w, http.StatusNotFound, "Application not found")
		return
	}
	if master == nil {
		writeError(w, http.StatusBadRequest, "No master resume set")
		return
	}

	jobDescription := app.JobDescription
	if jobDescription == "" {
		if app.JobURL == "" {
			writeError(w, http.StatusBadRequest, "Application has no job description; ingest one first")
			return
		}
		jobDescription, err = fetch.JobPosting(r.Context(), app.JobURL)
		if err != nil {
			writeError(w, http.StatusBadGateway, "Failed to fetch job posting")
			return
		}
		if err := s.db.SetApplicationDescription(r.Context(), app.ID, jobDescription); err != nil {
			log.Printf("[tailor] failed to store fetched job description for %s: %v", app.ID, err)
		}
	}

	result, err := s.tailorer.TailorResume(r.Context(), &master.Document, app.JobTitle, jobDescription)
	if err != nil {
		log.Printf("[tailor] pipeline failed for application %s: %v", app.ID, err)
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	title := app.JobTitle + " - " + app.Company
	result.Resume.Title = title
	stored, err := s.db.CreateResume(r.Context(), userID, title, false, result.Resume)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to store tailored resume")
		return
	}
	if err := s.db.LinkResume(r.Context(), app.ID, stored.ID); err != nil {
		log.Printf("[tailor] failed to link resume %s to application %s: %v", stored.ID, app.ID, err)
	}

	writeJSON(w, http.StatusOK, TailorResponse{
		Resume:      &stored.Document,
		CoverLetter: result.CoverLetter,
		ResumeID:    stored.ID,
	})
}
