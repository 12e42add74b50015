package handlers

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// WithPathStrip removes a prefix from the request path before routing, for
// deployments behind a reverse proxy that doesn't strip its mount point. An
// empty prefix leaves requests untouched.
func WithPathStrip(logger logrus.FieldLogger, prefix string) HandlerWrapper {
	logger = logger.WithField("middleware", "path_strip")

	if prefix == "" {
		logger.Warn("Path strip configured with an empty prefix, requests pass through unchanged")
		return func(h http.Handler) http.Handler {
			return h
		}
	}

	prefix = normalizePrefix(logger, prefix)
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.URL.Path = strings.TrimPrefix(r.URL.Path, prefix)

			h.ServeHTTP(w, r)
		})
	}
}

// normalizePrefix forces a leading and forbids a trailing slash, either
// mistake would silently break the prefix match.
func normalizePrefix(logger logrus.FieldLogger, prefix string) string {
	normalized := strings.TrimSuffix(prefix, `/`)
	if !strings.HasPrefix(normalized, `/`) {
		normalized = `/` + normalized
	}

	if normalized != prefix {
		logger.WithFields(logrus.Fields{
			"from": prefix,
			"to":   normalized,
		}).Warn("Corrected the path strip prefix")
	}

	return normalized
}
