package middleware

import (
	"net/http"

	wrap "github.com/Temutjin2k/taxi-analytics-system/pkg/logger/wrapper"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID attaches a request id to the context LogCtx and echoes it in the
// response headers. An id supplied by the client is reused.
func (a *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			id, err := uuid.New()
			if err != nil {
				a.log.Warn(r.Context(), "failed to generate request id", "err", err.Error())
			} else {
				requestID = id.String()
			}
		}

		if requestID != "" {
			w.Header().Set(requestIDHeader, requestID)
			r = r.WithContext(wrap.WithRequestID(r.Context(), requestID))
		}

		next.ServeHTTP(w, r)
	})
}
