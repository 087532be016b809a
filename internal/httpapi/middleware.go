package httpapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// statusRecorder captures the status code for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withMiddleware wraps the route table with panic recovery and access
// logging. The dispatcher already converts handler faults, so anything
// recovered here came from the adapter itself.
func (s *Server) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		defer func() {
			if p := recover(); p != nil {
				s.logger.Error("request panicked",
					"request_id", requestID,
					"method", r.Method,
					"path", r.URL.Path,
					"panic", p)
				s.writeJSON(rec, http.StatusInternalServerError,
					errorResponse{Error: "internal server error"})
				return
			}
			s.logger.Debug("request",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start))
		}()

		next.ServeHTTP(rec, r)
	})
}
