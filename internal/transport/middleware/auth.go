package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/asmirnova/circleback/pkg/ctxutil"
)

type tokenValidator interface {
	Validate(token string) (string, error)
}

// Auth returns middleware that requires a valid bearer service token on
// every request. The token subject (the calling service's name) is stored
// in the request context.
func Auth(logger *slog.Logger, tokens tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				unauthorized(w, "missing bearer token")
				return
			}

			caller, err := tokens.Validate(token)
			if err != nil {
				logger.WarnContext(r.Context(), "token rejected",
					slog.String("path", r.URL.Path),
					slog.Any("error", err),
				)
				unauthorized(w, "invalid token")
				return
			}

			ctx := ctxutil.WithCaller(r.Context(), caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    "UNAUTHENTICATED",
			"message": message,
		},
	})
}
