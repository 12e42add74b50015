package validator

import "github.com/addrkit/addrkit/types"

// Result is the detailed outcome of a single validation. It is constructed
// fresh per call and never mutated after being returned.
type Result struct {
	Valid bool   `json:"valid"`
	Email string `json:"email"`

	// Code carries the first failure, empty when Valid.
	Code Code `json:"code,omitempty"`

	Format     FormatResult      `json:"format"`
	Disposable *DisposableResult `json:"disposable,omitempty"`
	MX         *MXResult         `json:"mx,omitempty"`
}

type FormatResult struct {
	Valid bool `json:"valid"`
	Code  Code `json:"code,omitempty"`
}

type DisposableResult struct {
	Disposable bool `json:"disposable"`
	Code       Code `json:"code,omitempty"`
}

// MXResult describes the MX phase. Cached reports whether the answer came
// from the cache instead of a live lookup.
type MXResult struct {
	Valid   bool       `json:"valid"`
	Records []types.MX `json:"records"`
	Cached  bool       `json:"cached"`
	Code    Code       `json:"code,omitempty"`
}

func mxResultFromRecords(records []types.MX, cached bool) *MXResult {
	r := &MXResult{
		Records: records,
		Cached:  cached,
	}

	if r.Records == nil {
		r.Records = []types.MX{}
	}

	// A domain that exists but publishes no MX records is a definitive,
	// cacheable answer, just not a valid one.
	if len(r.Records) == 0 {
		r.Code = CodeNoMXRecords
	} else {
		r.Valid = true
	}

	return r
}
