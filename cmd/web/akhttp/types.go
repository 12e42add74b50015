package akhttp

import (
	"errors"

	"github.com/addrkit/addrkit/types"
	"github.com/addrkit/addrkit/validator"
)

var (
	ErrMissingBody            = errors.New("missing body")
	ErrInvalidRequest         = errors.New("request is invalid")
	ErrBodyTooLarge           = errors.New("request body too large")
	ErrUnsupportedContentType = errors.New("unsupported content-type")
)

var noRecords = make([]types.MX, 0)

type Response interface {
	PrepareResponse()
}

type CheckRequest struct {
	Email string `json:"email"`
}

type CheckResponse struct {
	Valid      bool           `json:"valid"`
	Code       validator.Code `json:"code,omitempty"`
	Records    []types.MX     `json:"records"`
	Cached     bool           `json:"cached"`
	Disposable bool           `json:"disposable"`
	Error      string         `json:"error,omitempty"`
}

func (r *CheckResponse) PrepareResponse() {
	if r.Records == nil {
		r.Records = noRecords
	}
}

type CacheDeleteRequest struct {
	Domain string `json:"domain"`
}

type CacheModifyResponse struct {
	Removed int    `json:"removed"`
	Error   string `json:"error,omitempty"`
}

func (r *CacheModifyResponse) PrepareResponse() {}
