package akhttp

import (
	"fmt"
	"io"
	"net/http"
)

// GetBodyFromHTTPRequest validates the request envelope and returns the raw
// body. Only JSON is accepted and the body may not exceed maxBodySize; the
// limit is enforced on the actual bytes read, a Content-Length header is
// taken as an early hint but not trusted.
func GetBodyFromHTTPRequest(r *http.Request, maxBodySize int64) ([]byte, error) {
	if r.Body == nil {
		return nil, ErrMissingBody
	}

	if r.ContentLength > maxBodySize {
		return nil, ErrBodyTooLarge
	}

	if ct := r.Header.Get("Content-Type"); ct != "application/json" {
		if len(ct) > 128 {
			// Don't echo unbounded attacker-controlled values back
			return nil, ErrUnsupportedContentType
		}

		return nil, fmt.Errorf("%w %q", ErrUnsupportedContentType, ct)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		return nil, ErrInvalidRequest
	}

	if int64(len(body)) > maxBodySize {
		return nil, ErrBodyTooLarge
	}

	return body, nil
}
