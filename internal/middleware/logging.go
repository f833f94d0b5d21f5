package middleware

import (
	"net/http"

	"github.com/2beens/fitnesslog/internal/timezone"

	log "github.com/sirupsen/logrus"
)

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.WithFields(log.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"ua":       r.Header.Get("User-Agent"),
				"timezone": r.Header.Get(timezone.Header),
			}).Trace(" ====> request")
			next.ServeHTTP(w, r)
		})
	}
}
