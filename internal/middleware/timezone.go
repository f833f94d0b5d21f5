package middleware

import (
	"net/http"
	"strings"

	"github.com/2beens/fitnesslog/internal/timezone"
)

// RequireTimezone rejects requests without a valid X-Timezone header and
// puts the timezone name into the request context.
func RequireTimezone() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tz := strings.TrimSpace(r.Header.Get(timezone.Header))
			if err := timezone.Validate(tz); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			next.ServeHTTP(w, r.WithContext(timezone.NewContext(r.Context(), tz)))
		})
	}
}
