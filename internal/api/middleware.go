package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wgomg/nucleo/internal/utils"
	"github.com/wgomg/nucleo/internal/utils/httputils"
)

const RequestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestID tags every request with an ID, reusing a client supplied one,
// and logs the outcome.
func RequestID(logger *utils.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(reqID); err != nil {
			reqID = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, reqID)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(httputils.WithRequestID(r.Context(), reqID)))

		logger.Info(&reqID, "%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
