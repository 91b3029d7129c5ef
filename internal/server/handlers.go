package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kedare/dryspot/internal/destination"
	"github.com/kedare/dryspot/internal/logger"
	"github.com/kedare/dryspot/internal/output"
)

// healthResponse is the body of GET /healthz.
type healthResponse struct {
	Status string `json:"status"`
}

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// getHealth handles GET /healthz.
func (s *Server) getHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// getAttributions handles GET /api/attributions.
func (s *Server) getAttributions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, destination.Attributions())
}

// getDestinations handles GET /api/destinations?location=<text>.
// The location is echoed verbatim; it does not change which destinations are returned.
func (s *Server) getDestinations(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")

	dests, err := s.provider.Destinations(r.Context(), location)
	switch {
	case errors.Is(err, destination.ErrNoLocation):
		writeJSON(w, http.StatusBadRequest, validationBody(err))

		return
	case err != nil:
		logger.Log.Errorf("Failed to load destinations for %q: %v", location, err)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal_error", "failed to load destinations"))

		return
	}

	if dests == nil {
		dests = []destination.Destination{}
	}

	writeJSON(w, http.StatusOK, output.Results{Location: location, Destinations: dests})
}

func errorBody(code, message string) errorResponse {
	return errorResponse{Error: errorDetail{Code: code, Message: message}}
}

func notFoundBody(message string) errorResponse {
	return errorBody("not_found", message)
}

func validationBody(err error) errorResponse {
	return errorBody("validation_error", err.Error())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Debugf("Failed to write response body: %v", err)
	}
}
