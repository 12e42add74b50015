package handlers

import (
	"context"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// RequestID is the context key under which every request carries its id.
// Handlers include it in their log fields so a request can be followed across
// middleware and handler entries.
const RequestID contextValue = "request_id"

type contextValue string

func (cv contextValue) String() string {
	return string(cv)
}

// WithRequestLogger tags each request with a process-unique id and logs its
// method, path, duration and response size at debug level.
func WithRequestLogger(logger logrus.FieldLogger) HandlerWrapper {

	logger = logger.WithField("middleware", "request_logger")
	return func(handler http.Handler) http.Handler {

		var sequence uint64
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := strconv.FormatUint(atomic.AddUint64(&sequence, 1), 10)

			writer := NewCustomResponseWriter(w)
			r = r.WithContext(context.WithValue(r.Context(), RequestID, rid))

			logger := logger.WithFields(logrus.Fields{
				RequestID.String(): rid,
				"method":           r.Method,
				"uri":              r.RequestURI,
			})

			logger.WithField("content_length", r.ContentLength).Debug("Request start")

			start := time.Now()
			handler.ServeHTTP(writer, r)

			logger.WithFields(logrus.Fields{
				"duration_ms":         time.Since(start).Milliseconds(),
				"response_size_bytes": writer.BytesWritten,
				"http_status":         writer.Status,
			}).Debug("Request end")
		})
	}
}
