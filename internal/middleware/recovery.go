package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/2beens/fitnesslog/internal/telemetry/metrics"
	"github.com/2beens/fitnesslog/internal/timezone"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// PanicRecovery turns a handler panic into a 500, marks the request span as failed
// and counts it. The error log carries the route name and the client timezone.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				if r == http.ErrAbortHandler {
					panic(r)
				}

				route := routeName(req)
				span := trace.SpanFromContext(req.Context())
				span.SetStatus(codes.Error, fmt.Sprintf("panic: %v", r))

				log.WithFields(log.Fields{
					"route":    route,
					"method":   req.Method,
					"timezone": req.Header.Get(timezone.Header),
				}).Errorf("fitnesslog: panic serving %s: %v\n%s", req.URL.Path, r, debug.Stack())

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, req)
		})
	}
}
