package middleware

import (
	"context"
	"net/http"

	"vstore-backend/internal/domain"
	"vstore-backend/internal/usecase"
	"vstore-backend/pkg/utils"
)

// NewAuthMiddleware validates the JWT and resolves its subject to the
// current staff record. Loading from the store instead of trusting claims
// means permission edits and deactivation apply mid-session, which matters
// when a staff account is being locked out.
func NewAuthMiddleware(authUC *usecase.AuthUsecase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := utils.ExtractClaims(r)
			if err != nil {
				http.Error(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
				return
			}

			staff, err := authUC.Identify(r.Context(), claims.StaffID)
			if err != nil {
				http.Error(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), domain.StaffContextKey, staff)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
