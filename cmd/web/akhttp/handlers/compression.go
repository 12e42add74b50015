package handlers

import (
	"compress/gzip"
	"net/http"

	"github.com/NYTimes/gziphandler"
)

// Responses smaller than a single MTU gain nothing from compression.
const compressionMinSize = 1500

// WithGzipHandler compresses responses for clients that accept it. MX record
// lists for popular domains compress well, they're highly repetitive JSON.
func WithGzipHandler() HandlerWrapper {
	wrapper, _ := gziphandler.GzipHandlerWithOpts(
		gziphandler.CompressionLevel(gzip.BestCompression),
		gziphandler.MinSize(compressionMinSize),
	)

	return func(handler http.Handler) http.Handler {
		return wrapper(handler)
	}
}
