package middleware

import (
	"io"
	"net/http"
)

// DefaultMaxBodyBytes caps set and day payloads, which are a few hundred bytes.
const DefaultMaxBodyBytes = 1 << 20

// DrainAndCloseRequest limits the request body to maxBodyBytes, then drains whatever
// the handler left unread and closes it. Reading past the limit fails inside the handler.
func DrainAndCloseRequest(maxBodyBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && maxBodyBytes > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			}
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.Copy(io.Discard, r.Body)
				_ = r.Body.Close()
			}
		})
	}
}
