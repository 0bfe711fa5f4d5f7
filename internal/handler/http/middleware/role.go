package middleware

import (
	"net/http"

	"github.com/teamready/readiness-backend-go/internal/domain/member"
	"github.com/teamready/readiness-backend-go/internal/handler/http/response"
	"github.com/teamready/readiness-backend-go/internal/pkg/jwt"
)

// RequireReviewer passes team leads, managers and owners.
func RequireReviewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, err := jwt.IdentityFromContext(r.Context())
		if err != nil {
			response.HandleError(w, member.ErrLeadAccessRequired)
			return
		}
		if !ident.Role.CanReview() {
			response.HandleError(w, member.ErrLeadAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireManager passes managers and owners only.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, err := jwt.IdentityFromContext(r.Context())
		if err != nil {
			response.HandleError(w, member.ErrManagerAccessRequired)
			return
		}
		if ident.Role != member.RoleManager && ident.Role != member.RoleOwner {
			response.HandleError(w, member.ErrManagerAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}
