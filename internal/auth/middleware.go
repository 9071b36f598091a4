package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

type ownerKey struct{}

// WithOwner returns a context carrying the authenticated owner id.
func WithOwner(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerKey{}, userID)
}

// Owner returns the authenticated owner id carried by the context.
func Owner(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(ownerKey{}).(uuid.UUID)
	return userID, ok
}

// openPaths are reachable without a session. Logout is open so a client
// holding an expired or invalid cookie can still clear it.
var openPaths = map[string]bool{
	"/v1/auth/register": true,
	"/v1/auth/login":    true,
	"/v1/auth/logout":   true,
}

// Middleware returns a huma middleware that resolves the session cookie to
// an owner id on the request context. Requests without a valid session on a
// protected path are rejected with 401.
func Middleware(api huma.API, sessions *Sessions) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if openPaths[ctx.URL().Path] {
			next(ctx)
			return
		}

		cookie, err := huma.ReadCookie(ctx, CookieName)
		if err != nil || cookie.Value == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "not authenticated")
			return
		}

		userID, err := sessions.Verify(cookie.Value)
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "not authenticated")
			return
		}

		next(huma.WithContext(ctx, WithOwner(ctx.Context(), userID)))
	}
}

// SessionCookie builds the session cookie for a freshly issued token.
func SessionCookie(token string, maxAge int) http.Cookie {
	return http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearSessionCookie builds the cookie that removes the session.
func ClearSessionCookie() http.Cookie {
	return http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
