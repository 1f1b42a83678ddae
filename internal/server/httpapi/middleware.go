package httpapi

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const userKey ctxKey = "user"

// requireAuth gates a mutating handler behind a valid bearer token. It runs
// to completion before the wrapped handler touches the request body, so an
// unauthorized multipart upload is rejected without parsing or persisting
// anything.
func (s *HTTPServer) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeMessage(w, http.StatusUnauthorized, "Not authorized, no token")
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")

		user, err := s.users.Authenticate(r.Context(), token)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "Not authorized")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next(w, r.WithContext(ctx))
	}
}
