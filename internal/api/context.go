package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/inkmatch/inkmatch-server/internal/auth"
	"github.com/inkmatch/inkmatch-server/internal/viewer"
)

// ctxKey is the type for context keys to avoid collisions.
type ctxKey string

const (
	// userIDKey is the context key for the authenticated user ID.
	userIDKey ctxKey = "userID"
	// viewerIDKey is the context key for the anonymous viewer ID.
	viewerIDKey ctxKey = "viewerID"
)

// GetUserID returns the authenticated user ID from context.
// Returns 401 error if user is not authenticated.
func GetUserID(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", huma.Error401Unauthorized("Authentication required")
	}
	return userID, nil
}

// setUserID stores the user ID in context.
func setUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetViewerID returns the anonymous viewer ID from context. The viewer
// middleware runs on every request, so a missing ID means the request
// bypassed the router; treat it as an internal error rather than a 401.
func GetViewerID(ctx context.Context) (string, error) {
	viewerID, ok := ctx.Value(viewerIDKey).(string)
	if !ok || viewerID == "" {
		return "", huma.Error500InternalServerError("Viewer identity missing")
	}
	return viewerID, nil
}

// setViewerID stores the viewer ID in context.
func setViewerID(ctx context.Context, viewerID string) context.Context {
	return context.WithValue(ctx, viewerIDKey, viewerID)
}

// authMiddleware returns a middleware that validates Bearer tokens and
// stores the user ID in context. If no token is present or the token is
// invalid, the request continues without a user; handlers that need
// authentication reject via GetUserID.
func authMiddleware(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.Verify(authHeader[7:])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := setUserID(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// viewerMiddleware ensures every request carries a viewer ID. Requests
// without the cookie get a freshly minted ID and the cookie is set on
// the response, so the identity sticks from the first page load. Clients
// that discard cookies get a new identity each request and simply see an
// empty like ledger.
func viewerMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			viewerID, present := viewer.FromRequest(r)
			if !present {
				viewer.SetCookie(w, viewerID)
			}

			ctx := setViewerID(r.Context(), viewerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
