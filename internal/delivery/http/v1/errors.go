package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"vstore-backend/internal/domain"
	"vstore-backend/pkg/logger"
)

// writeDomainError maps the domain error taxonomy onto HTTP statuses so
// every handler reports failures the same way.
func writeDomainError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrIllegalTransition):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidReturnState):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Msg("request failed")
		// Do not leak internals to the client
		http.Error(w, "Internal server error", status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
