package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/types"
)

// CreateResumeRequest is the payload for creating or replacing a resume.
type CreateResumeRequest struct {
	Title    string               `json:"title" validate:"required,min=1"`
	IsMaster bool                 `json:"is_master"`
	Document types.ResumeDocument `json:"document"`
}

// ownedResume loads a resume by path ID and verifies it belongs to the
// authenticated user. A nil return means the response was already written.
func (s *Server) ownedResume(w http.ResponseWriter, r *http.Request) *db.Resume {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}

	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid resume ID")
		return nil
	}

	resume, err := s.db.GetResume(r.Context(), resumeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get resume")
		return nil
	}
	// Not-found and not-owned are indistinguishable to the caller.
	if resume == nil || resume.UserID != userID {
		writeError(w, http.StatusNotFound, "Resume not found")
		return nil
	}
	return resume
}

// handleCreateResume stores a new resume document for the user.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}
	if err := req.Document.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	req.Document.AssignMissingIDs()
	resume, err := s.db.CreateResume(r.Context(), userID, req.Title, req.IsMaster, &req.Document)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create resume")
		return
	}

	writeJSON(w, http.StatusCreated, resume)
}

// handleListResumes lists the user's resumes without their documents.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumes, err := s.db.ListResumes(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list resumes")
		return
	}
	if resumes == nil {
		resumes = []db.ResumeSummary{}
	}

	writeJSON(w, http.StatusOK, resumes)
}

// handleGetResume returns a single resume with its full document.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	resume := s.ownedResume(w, r)
	if resume == nil {
		return
	}
	writeJSON(w, http.StatusOK, resume)
}

// handleUpdateResume replaces a resume's title and document.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	resume := s.ownedResume(w, r)
	if resume == nil {
		return
	}

	var req CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}
	if err := req.Document.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	req.Document.AssignMissingIDs()
	if err := s.db.UpdateResume(r.Context(), resume.ID, req.Title, &req.Document); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update resume")
		return
	}

	updated, err := s.db.GetResume(r.Context(), resume.ID)
	if err != nil || updated == nil {
		writeError(w, http.StatusInternalServerError, "Failed to reload resume")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// handleDeleteResume removes a resume.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	resume := s.ownedResume(w, r)
	if resume == nil {
		return
	}

	if err := s.db.DeleteResume(r.Context(), resume.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete resume")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDuplicateResume creates an independent copy of a resume. The copy
// is never a master and gets fresh entity IDs throughout.
func (s *Server) handleDuplicateResume(w http.ResponseWriter, r *http.Request) {
	resume := s.ownedResume(w, r)
	if resume == nil {
		return
	}

	doc := resume.Document.Clone()
	doc.ID = ""
	doc.Contact.ID = ""
	for i := range doc.Experiences {
		doc.Experiences[i].ID = ""
	}
	for i := range doc.Educations {
		doc.Educations[i].ID = ""
	}
	for i := range doc.Skills {
		doc.Skills[i].ID = ""
	}
	for i := range doc.Certifications {
		doc.Certifications[i].ID = ""
	}
	for i := range doc.Awards {
		doc.Awards[i].ID = ""
	}
	for i := range doc.Projects {
		doc.Projects[i].ID = ""
	}
	doc.AssignMissingIDs()

	title := resume.Title + " (Copy)"
	doc.Title = title

	dup, err := s.db.CreateResume(r.Context(), resume.UserID, title, false, doc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to duplicate resume")
		return
	}
	writeJSON(w, http.StatusCreated, dup)
}

// handleExportResume renders a resume to a downloadable .docx file.
func (s *Server) handleExportResume(w http.ResponseWriter, r *http.Request) {
	resume := s.ownedResume(w, r)
	if resume == nil {
		return
	}

	filename := fmt.Sprintf("%s.docx", sanitizeFilename(resume.Title))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.Render(s.templatePath, &resume.Document, w); err != nil {
		// Headers may already be sent; the truncated body signals failure.
		writeError(w, http.StatusInternalServerError, "Failed to export resume")
		return
	}
}

// sanitizeFilename strips characters that are unsafe in a download name.
func sanitizeFilename(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ', r == '-', r == '_', r == '.':
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return "resume"
	}
	return string(out)
}
