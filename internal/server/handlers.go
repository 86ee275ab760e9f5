package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jonathan/talent-matcher/internal/types"
)

func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		s.errorResponse(w, http.StatusBadRequest, "invalid id: "+r.PathValue("id"))
		return 0, false
	}
	return id, true
}

// handleCreateJob ingests a job record. Skills and cultural profile are
// derived from the description when not provided.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var job types.JobRecord
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if job.Title == "" {
		err := &ErrValidation{Field: "title", Message: "must not be empty"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := s.engine.IngestJob(r.Context(), job)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]int{"id": id})
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.engine.Store().ListJobs(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": jobs, "count": len(jobs)})
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	job, err := s.engine.Store().GetJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleJobMatches scores every stored candidate against the job and returns
// the ranked list.
func (s *Server) handleJobMatches(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	matches, err := s.engine.MatchesForJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"matches": matches, "count": len(matches)})
}

// handleCreateCandidate ingests a candidate record. Skills, experience years
// and cultural profile are derived from the narrative when not provided.
func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	var candidate types.CandidateRecord
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if candidate.Name == "" {
		err := &ErrValidation{Field: "name", Message: "must not be empty"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := s.engine.IngestCandidate(r.Context(), candidate)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]int{"id": id})
}

func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.engine.Store().ListCandidates(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"candidates": candidates, "count": len(candidates)})
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	candidate, err := s.engine.Store().GetCandidate(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleCandidateInsights returns the extracted timeline plus growth and
// cultural profiles for one candidate.
func (s *Server) handleCandidateInsights(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	insights, err := s.engine.AnalyzeCandidate(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, insights)
}
