package handlers

import (
	"net/http"
	"time"

	"github.com/juju/ratelimit"
	"github.com/sirupsen/logrus"
)

// NewRateLimitHandler throttles requests through a token bucket. A request
// that can get a token within maxDelay waits for it; one that can't is
// rejected outright, a caller stuck in a queue longer than that is better
// served by an immediate 429.
func NewRateLimitHandler(logger logrus.FieldLogger, bucket *ratelimit.Bucket, maxDelay time.Duration) HandlerWrapper {
	logger = logger.WithField("middleware", "rate_limiter")

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wait, ok := bucket.TakeMaxDuration(1, maxDelay)
			if !ok {
				logger.WithFields(logrus.Fields{
					"remote_addr":      r.RemoteAddr,
					RequestID.String(): r.Context().Value(RequestID),
					"max_delay":        maxDelay,
				}).Warn("Rejecting request, token wait exceeds the max allowed delay")

				http.Error(w, "Server busy, request aborted", http.StatusTooManyRequests)
				return
			}

			if wait > 0 {
				logger.WithFields(logrus.Fields{
					"remote_addr":      r.RemoteAddr,
					RequestID.String(): r.Context().Value(RequestID),
					"delay":            wait,
				}).Warn("Throttling request")

				time.Sleep(wait)
			}

			h.ServeHTTP(w, r)
		})
	}
}
