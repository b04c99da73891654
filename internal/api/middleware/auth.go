package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/devlinks/api/pkg/token"
)

type claimsKeyType string

const claimsKey claimsKeyType = "auth_claims"

// AuthCookieName is the HttpOnly cookie carrying the session token.
const AuthCookieName = "authToken"

// Auth resolves the session credential — cookie first, then Authorization
// Bearer header — validates it, and attaches the decoded claims to the
// request context. Absent credential: 401. Present but invalid: 403.
func Auth(issuer *token.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := TokenFromRequest(r)
			if tok == "" {
				writeAuthError(w, http.StatusUnauthorized, "No token provided")
				return
			}

			claims, err := issuer.Validate(tok)
			if err != nil {
				writeAuthError(w, http.StatusForbidden, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenFromRequest extracts the raw token, preferring the auth cookie over
// the Authorization header.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(AuthCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	ah := r.Header.Get("Authorization")
	if strings.HasPrefix(ah, "Bearer ") {
		return strings.TrimSpace(ah[len("Bearer "):])
	}
	return ""
}

// ContextWithClaims attaches claims directly, bypassing token validation.
// Intended for tests exercising protected handlers.
func ContextWithClaims(ctx context.Context, claims *token.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaims returns the decoded token claims from context, or nil.
func GetClaims(ctx context.Context) *token.Claims {
	if v := ctx.Value(claimsKey); v != nil {
		if c, ok := v.(*token.Claims); ok {
			return c
		}
	}
	return nil
}

// GetUserID returns the authenticated user id from context.
func GetUserID(ctx context.Context) string {
	if c := GetClaims(ctx); c != nil {
		return c.UserID
	}
	return ""
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
