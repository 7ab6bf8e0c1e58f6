package middleware

import (
	"net/http"

	"github.com/accountapp/accountapp/userctx"
)

// RequireUser rejects mutating requests that do not name their user in
// X-Account-User. Reads pass through.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
		default:
			if !userctx.HasUser(r.Context()) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"` + UserHeader + ` header is required"}` + "\n"))
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
