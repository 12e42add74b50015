package validator

import "errors"

// Code identifies the first check that rejected an address. Codes end up in
// results, not in returned errors; see Check for the split.
type Code string

const (
	CodeEmailEmpty          Code = "email_empty"
	CodeInvalidFormat       Code = "invalid_format"
	CodeNoMXRecords         Code = "no_mx_records"
	CodeDNSLookupFailed     Code = "dns_lookup_failed"
	CodeMXLookupFailed      Code = "mx_lookup_failed"
	CodeMXSkippedDisposable Code = "mx_skipped_disposable"
	CodeDisposableEmail     Code = "disposable_email"
)

var (
	// ErrInvalidTimeout is returned by New when the configured timeout can't
	// be parsed or isn't positive. It's a configuration problem, never folded
	// into a Result.
	ErrInvalidTimeout = errors.New("invalid timeout value")

	// ErrDNSLookupTimeout escapes Check and CheckBool as a returned error,
	// even though other MX failures become result codes. Callers that ignore
	// the result's code still need to be able to tell "the address is bad"
	// apart from "the lookup never completed".
	ErrDNSLookupTimeout = errors.New("MX lookup exceeded the configured timeout")

	ErrEmailAddressSyntax = errors.New("invalid e-mail address syntax")
)

// ValidationError ties a syntax failure to the check that produced it.
type ValidationError struct {
	Check    string
	Internal error
	error
}

func (v ValidationError) Unwrap() error {
	return v.error
}
