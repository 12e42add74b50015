package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/juju/ratelimit"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func testLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

func TestWithPathStrip(t *testing.T) {
	tests := []struct {
		name      string
		strip     string
		requested string
		want      string
	}{
		{name: "plain", strip: "/api", requested: "/api/check", want: "/check"},
		{name: "missing leading slash", strip: "api", requested: "/api/check", want: "/check"},
		{name: "trailing slash", strip: "/api/", requested: "/api/check", want: "/check"},
		{name: "no match leaves path alone", strip: "/api", requested: "/check", want: "/check"},
		{name: "empty strip is a no-op", strip: "", requested: "/api/check", want: "/api/check"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			handler := WithPathStrip(testLogger(), tt.strip)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.URL.Path
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.requested, nil))

			if got != tt.want {
				t.Errorf("WithPathStrip(%q) on %q: handler saw %q, want %q", tt.strip, tt.requested, got, tt.want)
			}
		})
	}
}

func TestWithHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Add("Strict-Transport-Security", "max-age=31536000")
	headers.Add("X-Clacks-Overhead", "GNU Terry Pratchett")

	handler := WithHeaders(headers)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	for name := range headers {
		if got := rec.Header().Get(name); got != headers.Get(name) {
			t.Errorf("expected header %q to be %q, got %q", name, headers.Get(name), got)
		}
	}
}

func TestWithRequestLogger(t *testing.T) {
	var gotID interface{}
	handler := WithRequestLogger(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Context().Value(RequestID)
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if gotID == nil {
		t.Error("expected a request ID on the request context")
	}
}

func TestCustomResponseWriterRecords(t *testing.T) {
	rec := httptest.NewRecorder()
	w := NewCustomResponseWriter(rec)

	w.WriteHeader(http.StatusTeapot)
	n, err := w.Write([]byte("short and stout"))
	if err != nil {
		t.Fatalf("unexpected write error %v", err)
	}

	if w.Status != http.StatusTeapot {
		t.Errorf("recorded status %d, want %d", w.Status, http.StatusTeapot)
	}

	if w.BytesWritten != n {
		t.Errorf("recorded %d bytes, want %d", w.BytesWritten, n)
	}
}

func TestNewRateLimitHandlerAbortsAboveMaxDelay(t *testing.T) {
	// A bucket with no capacity forces the abort path immediately.
	bucket := ratelimit.NewBucket(time.Hour, 1)
	bucket.TakeAvailable(1)

	handler := NewRateLimitHandler(testLogger(), bucket, time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached when the bucket is exhausted")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/check", nil))

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status %d, got %d", http.StatusTooManyRequests, rec.Code)
	}

	body, _ := io.ReadAll(rec.Body)
	if len(body) == 0 {
		t.Error("expected a body explaining the throttling")
	}
}
