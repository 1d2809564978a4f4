package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/talentia-hr/attendance-engine/internal/domain/user"
	"github.com/talentia-hr/attendance-engine/internal/handler/http/response"
)

// RequireHR requires the hr or admin role. Destructive dashboard actions
// (deleting attendance rows) sit behind this.
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "HR access required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "HR access required")
			return
		}

		role := user.Role(roleStr)
		if role != user.RoleHR && role != user.RoleAdmin {
			response.Forbidden(w, "HR access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
