package middleware

import (
	"context"
	"net/http"
	"strings"

	"blogd/app/auth"
)

// Auth guards routes behind bearer-token authentication.
type Auth struct {
	Signer *auth.Signer
}

// NewAuth creates an Auth middleware around the token signer.
func NewAuth(signer *auth.Signer) *Auth {
	return &Auth{Signer: signer}
}

// RequireAuth rejects requests without a valid bearer token and stores the
// resolved principal in the request context for downstream handlers.
// Resource-level ownership checks happen in the repositories, not here.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			unauthorized(w, "authentication required")
			return
		}

		principal, err := a.Signer.Parse(strings.TrimPrefix(authz, "Bearer "))
		if err != nil {
			unauthorized(w, "could not validate credentials")
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}

// Principal returns the authenticated username stored by RequireAuth, or "".
func Principal(ctx context.Context) string {
	if v, ok := ctx.Value(principalKey).(string); ok {
		return v
	}
	return ""
}
