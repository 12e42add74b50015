package handlers

import "net/http"

// WithHeaders adds the configured headers to every response. Values are
// appended, an operator can configure a header multiple times.
func WithHeaders(headers http.Header) HandlerWrapper {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			target := w.Header()
			for name, values := range headers {
				for _, value := range values {
					target.Add(name, value)
				}
			}

			handler.ServeHTTP(w, r)
		})
	}
}
