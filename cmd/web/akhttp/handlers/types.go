package handlers

import (
	"net/http"
)

// HandlerWrapper is the shape every middleware in this package returns,
// allowing them to be chained in any order.
type HandlerWrapper func(handler http.Handler) http.Handler

// CustomResponseWriter records the status code and body size so middleware
// running after the handler can report on the response. A handler that never
// calls WriteHeader implicitly sends a 200, which is recorded on the first
// Write instead.
type CustomResponseWriter struct {
	http.ResponseWriter

	Status       int
	BytesWritten int
}

func NewCustomResponseWriter(w http.ResponseWriter) *CustomResponseWriter {
	return &CustomResponseWriter{ResponseWriter: w}
}

func (w *CustomResponseWriter) WriteHeader(statusCode int) {
	w.Status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *CustomResponseWriter) Write(b []byte) (int, error) {
	if w.Status == 0 {
		w.Status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.BytesWritten += n

	return n, err
}
