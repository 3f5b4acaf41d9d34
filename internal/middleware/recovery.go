package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/2beens/smarttrack/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// PanicRecovery turns a handler panic into a 500 and marks the request span failed.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				log.Errorf("http: panic serving %s %s: %v\n%s", req.Method, req.URL.Path, r, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}

				span := trace.SpanFromContext(req.Context())
				span.RecordError(fmt.Errorf("panic: %v", r))
				span.SetStatus(codes.Error, "handler panicked")

				http.Error(respWriter, "internal server error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(respWriter, req)
		})
	}
}
