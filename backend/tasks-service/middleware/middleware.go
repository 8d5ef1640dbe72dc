package middleware

import (
	"net/http"
	"time"

	"github.com/dahiyakapil/task-tracker/backend/tasks-service/logging"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// EnableCORS answers preflight requests and sets the CORS headers for origin.
func EnableCORS(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+RequestIDHeader)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// RequestLogger writes one access log line per request and tags the
// response with a request ID.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}

		entry := logging.Logger.WithFields(logrus.Fields{
			"requestId": requestID,
			"method":    r.Method,
			"path":      r.URL.RequestURI(),
			"status":    rec.status,
			"bytes":     rec.bytes,
			"duration":  time.Since(start).String(),
		})
		switch {
		case rec.status >= http.StatusInternalServerError:
			entry.Error("Event ID: HTTP_REQUEST, Description: request failed")
		case rec.status >= http.StatusBadRequest:
			entry.Warn("Event ID: HTTP_REQUEST, Description: request rejected")
		default:
			entry.Info("Event ID: HTTP_REQUEST, Description: request served")
		}
	})
}
