package middleware

import (
	"net/http"

	"vstore-backend/internal/domain"
)

// AdminMiddleware ensures the authenticated staff member has the 'admin'
// role. MUST be used AFTER AuthMiddleware.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staff, ok := r.Context().Value(domain.StaffContextKey).(*domain.Staff)
		if !ok || staff == nil {
			http.Error(w, "Unauthorized: No staff found in context", http.StatusUnauthorized)
			return
		}

		if !staff.IsAdmin() {
			http.Error(w, "Forbidden: Admins only", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
