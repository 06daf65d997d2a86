package v1

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"vstore-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestWriteDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"permission denied", fmt.Errorf("%w: delete order", domain.ErrPermissionDenied), http.StatusForbidden},
		{"illegal transition", fmt.Errorf("%w: Placed -> Returned", domain.ErrIllegalTransition), http.StatusConflict},
		{"invalid return state", fmt.Errorf("%w: no refund-type return", domain.ErrInvalidReturnState), http.StatusConflict},
		{"validation", fmt.Errorf("%w: name required", domain.ErrValidation), http.StatusBadRequest},
		{"not found", fmt.Errorf("%w: order ORD-1", domain.ErrNotFound), http.StatusNotFound},
		{"unclassified", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeDomainError(rec, tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), "connection reset", "internals must not leak")
			}
		})
	}
}
