// Package validator decides whether an e-mail address is deliverable enough
// to accept. Validation runs in three ordered phases: syntax, disposable
// provider and MX lookup; a failing phase stops the ones after it. The MX
// phase consults a shared result cache before doing DNS work and races the
// lookup against a configurable timeout.
//
// Phase failures are reported through the Result, not the error return. The
// returned error is reserved for the two cases where the call itself couldn't
// complete as configured: an invalid timeout and a lookup that ran out of
// time. Bulk callers should check the error per address to tell "definitive
// answer" apart from "no answer".
package validator

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/addrkit/addrkit/types"
)

const DefaultTimeout = 10 * time.Second

// New constructs a validator. Without options it checks syntax and MX records
// against the system resolver with the default timeout, no cache and no
// disposable screening.
func New(options ...Option) (*EmailValidator, error) {
	v := &EmailValidator{
		checkMX:     true,
		timeout:     DefaultTimeout,
		formatCheck: checkEmailAddressSyntax,
	}

	for _, o := range options {
		o(v)
	}

	if v.rawTimeout != "" {
		d, err := ParseTimeout(v.rawTimeout)
		if err != nil {
			return nil, err
		}

		v.timeout = d
	}

	if v.timeout <= 0 {
		return nil, fmt.Errorf("%w: %s is not positive", ErrInvalidTimeout, v.timeout)
	}

	if v.resolver == nil {
		v.resolver = NewNetResolver(net.DefaultResolver)
	}

	return v, nil
}

type EmailValidator struct {
	resolver    MXResolver
	cache       MXCache
	disposable  DisposableLookup
	formatCheck FormatCheckFn

	checkMX    bool
	timeout    time.Duration
	rawTimeout string
	cacheTTL   time.Duration
}

// Check validates an address and returns the detailed result. The error is
// non-nil only for a lookup timeout, see the package doc.
func (v *EmailValidator) Check(ctx context.Context, email string) (Result, error) {
	return v.check(ctx, email, true)
}

// CheckBool is the boolean twin of Check. A disposable address short-circuits
// before any DNS work. The error carries the same meaning as with Check.
func (v *EmailValidator) CheckBool(ctx context.Context, email string) (bool, error) {
	result, err := v.check(ctx, email, false)
	if err != nil {
		return false, err
	}

	return result.Valid, nil
}

func (v *EmailValidator) check(ctx context.Context, email string, detailed bool) (Result, error) {
	result := Result{Email: email}

	// Phase 1, syntax. Mandatory, terminates on failure.
	if email == "" {
		result.Code = CodeEmailEmpty
		result.Format.Code = CodeEmailEmpty
		return result, nil
	}

	parts, err := types.NewEmailParts(email)
	if err == nil {
		err = v.formatCheck(parts)
	}

	if err != nil {
		result.Code = CodeInvalidFormat
		result.Format.Code = CodeInvalidFormat
		return result, nil
	}

	result.Format.Valid = true

	// Phase 2, disposable providers. Opt-in.
	if v.disposable != nil {
		if v.disposable.Contains(parts.Domain) {
			result.Code = CodeDisposableEmail
			result.Disposable = &DisposableResult{Disposable: true, Code: CodeDisposableEmail}

			// The verdict is already in, a DNS round trip would be wasted.
			// Detailed callers that asked for MX still get a sub-result
			// explaining why the lookup didn't happen.
			if detailed && v.checkMX {
				result.MX = &MXResult{Records: []types.MX{}, Code: CodeMXSkippedDisposable}
			}

			return result, nil
		}

		result.Disposable = &DisposableResult{}
	}

	// Phase 3, MX records. Opt-out.
	if !v.checkMX {
		result.Valid = true
		return result, nil
	}

	mx, err := v.resolveMX(ctx, parts.Domain)
	if err != nil {
		return result, err
	}

	result.MX = mx
	if mx.Valid {
		result.Valid = true
	} else {
		result.Code = mx.Code
	}

	return result, nil
}

// resolveMX answers the MX phase from the cache when it can, otherwise it
// performs the raced lookup and feeds the cache. Only the timeout comes back
// as an error; other lookup failures are classified into the result.
func (v *EmailValidator) resolveMX(ctx context.Context, domain string) (*MXResult, error) {
	if v.cache != nil {
		if records, ok := v.cache.Get(domain); ok {
			return mxResultFromRecords(records, true), nil
		}
	}

	records, err := v.lookupWithTimeout(ctx, domain)
	if err != nil {
		if errors.Is(err, ErrDNSLookupTimeout) {
			return nil, err
		}

		return &MXResult{Records: []types.MX{}, Code: ClassifyLookupError(err)}, nil
	}

	// An empty answer is cached too: "no MX records" is as definitive as a
	// full one. Failures above are not, a transient resolver problem
	// shouldn't be pinned for a whole TTL window.
	if v.cache != nil {
		v.cache.Set(domain, records, v.cacheTTL)
	}

	return mxResultFromRecords(records, false), nil
}
