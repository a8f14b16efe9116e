package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/prodtrack/timecore-backend-go/internal/handler/http/response"
	"github.com/prodtrack/timecore-backend-go/internal/pkg/jwt"
)

// SupervisorOnly gates the management surfaces: pending issue listing and
// the supervised clear action.
func SupervisorOnly(next http.Handler) http.Handler {
	return requireRole(next, jwt.RoleSupervisor, jwt.RoleAdmin)
}

// AdminOnly gates break rule administration.
func AdminOnly(next http.Handler) http.Handler {
	return requireRole(next, jwt.RoleAdmin)
}

func requireRole(next http.Handler, roles ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Missing or invalid token")
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Insufficient privileges")
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				next.ServeHTTP(w, r)
				return
			}
		}

		response.Forbidden(w, "Insufficient privileges")
	})
}
