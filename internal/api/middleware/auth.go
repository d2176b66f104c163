package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/klyszcz/salon-dayview/internal/api/handlers"
	"github.com/klyszcz/salon-dayview/internal/domain"
)

type contextKey string

const viewerKey contextKey = "viewer"

// Session headers resolved by the auth gateway in front of this service
const (
	HeaderUserID     = "X-User-ID"
	HeaderUserRole   = "X-User-Role"
	HeaderEmployeeID = "X-Employee-ID"
)

const (
	msgMissingIdentity = "brak danych uwierzytelniających"
	msgInvalidIdentity = "nieprawidłowe dane uwierzytelniające"
)

// Auth resolves the viewer identity from the session headers and stores it
// in the request context. The viewer is immutable for the request's duration.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(HeaderUserID)
		roleStr := r.Header.Get(HeaderUserRole)
		if userIDStr == "" || roleStr == "" {
			handlers.RespondUnauthorized(w, msgMissingIdentity)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidIdentity)
			return
		}
		if !domain.IsValidRole(roleStr) {
			handlers.RespondUnauthorized(w, msgInvalidIdentity)
			return
		}

		viewer := domain.Viewer{
			UserID: userID,
			Role:   domain.Role(roleStr),
		}

		// Employee viewers carry their own employee identifier
		if viewer.Role == domain.RoleEmployee {
			employeeID, err := strconv.ParseInt(r.Header.Get(HeaderEmployeeID), 10, 64)
			if err != nil || employeeID <= 0 {
				handlers.RespondUnauthorized(w, msgInvalidIdentity)
				return
			}
			viewer.EmployeeID = employeeID
		}

		ctx := context.WithValue(r.Context(), viewerKey, viewer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetViewer extracts the resolved viewer from the request context
func GetViewer(ctx context.Context) (domain.Viewer, bool) {
	v, ok := ctx.Value(viewerKey).(domain.Viewer)
	return v, ok
}
