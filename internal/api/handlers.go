package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/yourusername/match-oracle/internal/models"
	"github.com/yourusername/match-oracle/internal/service"
)

const maxBodyBytes = 1 << 20

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req models.MatchRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := s.svc.Predict(r.Context(), req)
	s.respond(w, result, err)
}

func (s *Server) handleSideMarkets(w http.ResponseWriter, r *http.Request) {
	var req models.MatchRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := s.svc.PredictSideMarkets(r.Context(), req)
	s.respond(w, result, err)
}

func (s *Server) handleCombined(w http.ResponseWriter, r *http.Request) {
	var req models.MatchRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := s.svc.Combined(r.Context(), req)
	s.respond(w, result, err)
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	var req models.MatchRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := s.svc.Insights(r.Context(), req)
	s.respond(w, result, err)
}

func (s *Server) handleValueBets(w http.ResponseWriter, r *http.Request) {
	var req models.MatchRequest
	if !decode(w, r, &req) {
		return
	}
	entries, err := s.svc.ValueBets(r.Context(), req)
	if err != nil {
		s.respond(w, nil, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"value_bets": entries,
		"count":      len(entries),
	})
}

func (s *Server) handleKelly(w http.ResponseWriter, r *http.Request) {
	var req models.KellyRequest
	if !decode(w, r, &req) {
		return
	}
	rec, err := s.svc.Kelly(r.Context(), req)
	s.respond(w, rec, err)
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	var req models.FilterRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := s.svc.Filter(r.Context(), req)
	s.respond(w, result, err)
}

func (s *Server) handleEvolution(w http.ResponseWriter, r *http.Request) {
	var req models.EvolutionRequest
	if !decode(w, r, &req) {
		return
	}
	evolutions, err := s.svc.Evolve(r.Context(), req)
	if err != nil {
		s.respond(w, nil, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"evolutions": evolutions,
		"count":      len(evolutions),
	})
}

// respond maps service errors onto status codes.
func (s *Server) respond(w http.ResponseWriter, data interface{}, err error) {
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, data)
	case service.IsInvalidRequest(err):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.WithError(err).Error("Request failed")
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

// decode reads a JSON body, answering 400 itself on failure.
func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

// respondJSON encodes before writing the header so an unencodable body
// becomes a 500 instead of an empty 200.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		status = http.StatusInternalServerError
		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(ErrorResponse{
			Error:   http.StatusText(status),
			Message: "response encoding failed",
			Code:    status,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}
