package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/user"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/handler/http/response"
)

func requireRole(required user.Role, accessErr error) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, accessErr)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok || user.Role(roleStr) != required {
				response.HandleError(w, accessErr)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireSuperadmin requires superadmin role
func RequireSuperadmin(next http.Handler) http.Handler {
	return requireRole(user.RoleSuperadmin, user.ErrSuperadminAccessRequired)(next)
}

// RequireAdmin requires admin role
func RequireAdmin(next http.Handler) http.Handler {
	return requireRole(user.RoleAdmin, user.ErrAdminAccessRequired)(next)
}

// RequireEmployee requires employee role
func RequireEmployee(next http.Handler) http.Handler {
	return requireRole(user.RoleEmployee, user.ErrEmployeeAccessRequired)(next)
}
