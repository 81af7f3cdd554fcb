package server

import (
	"fmt"
	"net/http"

	"github.com/etnz/totalreturn"
	"github.com/etnz/totalreturn/date"
	"github.com/go-chi/render"
)

// computeRequest is the body of POST /api/compute.
type computeRequest struct {
	Codes     []string `json:"codes"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"` // optional
}

type errorResponse struct {
	Error string `json:"error"`
}

func badRequest(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, errorResponse{Error: err.Error()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, "ok")
}

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	var req computeRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, fmt.Errorf("invalid body: %w", err))
		return
	}
	if len(req.Codes) == 0 {
		badRequest(w, r, fmt.Errorf("codes is required"))
		return
	}
	start, err := date.Parse(req.StartDate)
	if err != nil {
		badRequest(w, r, fmt.Errorf("invalid start_date: %w", err))
		return
	}
	var end date.Date
	if req.EndDate != "" {
		if end, err = date.Parse(req.EndDate); err != nil {
			badRequest(w, r, fmt.Errorf("invalid end_date: %w", err))
			return
		}
	}

	reqs := make([]totalreturn.Request, 0, len(req.Codes))
	for _, code := range req.Codes {
		reqs = append(reqs, totalreturn.Request{Symbol: code, Start: start, End: end})
	}
	rows := s.pipeline.RunBatch(r.Context(), reqs, s.concurrency)
	render.JSON(w, r, rows)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		badRequest(w, r, fmt.Errorf("q is required"))
		return
	}
	results, err := s.search.Search(r.Context(), term)
	if err != nil {
		s.log.Error().Err(err).Str("term", term).Msg("search failed")
		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, errorResponse{Error: err.Error()})
		return
	}
	render.JSON(w, r, results)
}
