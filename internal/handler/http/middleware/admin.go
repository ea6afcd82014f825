package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/presensia/hris-backend-go/internal/handler/http/response"
	"github.com/presensia/hris-backend-go/internal/pkg/jwt"
)

// AdminOnly guards endpoints reserved for the admin and superadmin roles.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Invalid token")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || (jwt.Role(role) != jwt.RoleAdmin && jwt.Role(role) != jwt.RoleSuperAdmin) {
			response.Forbidden(w, "Admin privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
