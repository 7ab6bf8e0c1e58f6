package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/accountapp/accountapp/models"
	"github.com/accountapp/accountapp/userctx"
)

// UserHeader names the acting user of a request
const UserHeader = "X-Account-User"

// Actor records who is making the request and from where, so services can
// attribute audit entries
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := models.Actor{
			Username:  strings.TrimSpace(r.Header.Get(UserHeader)),
			IPAddress: getIPAddress(r),
		}
		next.ServeHTTP(w, r.WithContext(userctx.SetActor(r.Context(), actor)))
	})
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return strings.TrimSpace(realIP)
	}

	// Fall back to RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
