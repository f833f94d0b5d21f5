package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/2beens/fitnesslog/internal/timezone"

	log "github.com/sirupsen/logrus"
)

var allowedHeaders = strings.Join([]string{
	"Accept",
	"Content-Type",
	"Content-Length",
	"Accept-Encoding",
	timezone.Header,
	"MCP-Protocol-Version",
	"MCP-Session-Id",
}, ", ")

// Cors lets the SPA on allowedOrigins call the API. "*" allows any origin.
// Requests without an Origin header (curl, MCP clients) pass through untouched.
// Preflight requests are answered here and never reach the router handlers.
func Cors(allowedOrigins []string) func(next http.Handler) http.Handler {
	allowAny := slices.Contains(allowedOrigins, "*")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			if !allowAny && !slices.Contains(allowedOrigins, origin) {
				log.Warnf("CORS: origin not allowed for path [%s] and origin [%s]", r.URL.Path, origin)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			allowOrigin := origin
			if allowAny {
				allowOrigin = "*"
			} else {
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
			w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")
			w.Header().Set("Access-Control-Expose-Headers", "MCP-Session-Id")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
