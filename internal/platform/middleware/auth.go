package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"academy/pkg/domain"
)

// CallerValidator validates a relay bearer token and returns the signer
// identity it authenticates.
type CallerValidator interface {
	ValidateToken(tokenString string) (domain.Identity, error)
}

type contextKeyCaller struct{}

// GetCaller retrieves the authenticated signer identity from the context.
// The zero identity means the request was not authenticated.
func GetCaller(ctx context.Context) domain.Identity {
	caller, ok := ctx.Value(contextKeyCaller{}).(domain.Identity)
	if !ok {
		return domain.ZeroIdentity
	}
	return caller
}

// WithCaller stores an authenticated signer identity on the context. Exposed
// for handler tests.
func WithCaller(ctx context.Context, caller domain.Identity) context.Context {
	return context.WithValue(ctx, contextKeyCaller{}, caller)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// authenticated signer identity on the context. Whether that identity may
// perform the requested transition is the engine's decision, not transport's.
func RequireAuth(validator CallerValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", GetRequestID(ctx),
					"path", r.URL.Path,
				)
				writeUnauthorized(w, "Missing or invalid Authorization header")
				return
			}

			caller, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", GetRequestID(ctx),
				)
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(ctx, caller)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"` + description + `"}`))
}
