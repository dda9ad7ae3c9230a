package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rasupy/todo-myapp/internal/domain"
)

// getPathID extracts a positive integer identifier from the URL path
// parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrInvalidID, paramName)
	}
	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s has invalid format", domain.ErrInvalidID, paramName)
	}
	return id, nil
}

// getQueryID extracts a positive integer identifier from the query string.
// required controls whether absence is an error; an absent optional
// parameter returns (0, false, nil).
func getQueryID(r *http.Request, name string, required bool) (int64, bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		if required {
			return 0, false, fmt.Errorf("%w: %s is required", domain.ErrValidation, name)
		}
		return 0, false, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false, fmt.Errorf("%w: %s has invalid format", domain.ErrInvalidID, name)
	}
	return id, true, nil
}
