package validator

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Option func(v *EmailValidator)

// WithResolver replaces the MX resolver, typically with NewCustomNetResolver
// or a stub in tests.
func WithResolver(r MXResolver) Option {
	return func(v *EmailValidator) {
		v.resolver = r
	}
}

// WithCache attaches a shared MX result cache. The cache is consulted before
// any lookup and fed after one. Passing nil keeps caching off.
func WithCache(c MXCache) Option {
	return func(v *EmailValidator) {
		v.cache = c
	}
}

// WithCacheTTL sets the TTL handed to the cache on store. Zero defers to the
// cache's own default.
func WithCacheTTL(ttl time.Duration) Option {
	return func(v *EmailValidator) {
		v.cacheTTL = ttl
	}
}

// WithDisposableSet enables the disposable phase, backed by the given set.
func WithDisposableSet(s DisposableLookup) Option {
	return func(v *EmailValidator) {
		v.disposable = s
	}
}

// WithoutMXCheck limits validation to the synchronous phases; no DNS traffic.
func WithoutMXCheck() Option {
	return func(v *EmailValidator) {
		v.checkMX = false
	}
}

// WithTimeout sets the MX phase timeout. Non-positive values make New fail
// with ErrInvalidTimeout.
func WithTimeout(d time.Duration) Option {
	return func(v *EmailValidator) {
		v.timeout = d
		v.rawTimeout = ""
	}
}

// WithTimeoutString sets the MX phase timeout from user-supplied config, see
// ParseTimeout for the accepted forms. Parsing happens in New.
func WithTimeoutString(s string) Option {
	return func(v *EmailValidator) {
		v.rawTimeout = s
	}
}

// WithFormatCheck overrides the syntax check, mostly useful in tests.
func WithFormatCheck(fn FormatCheckFn) Option {
	return func(v *EmailValidator) {
		if fn != nil {
			v.formatCheck = fn
		}
	}
}

// ParseTimeout accepts a Go duration string ("2s", "750ms") or a bare integer
// meaning milliseconds ("750"). Anything unparsable or not positive yields
// ErrInvalidTimeout.
func ParseTimeout(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidTimeout)
	}

	var d time.Duration
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		d = time.Duration(ms) * time.Millisecond
	} else {
		d, err = time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, value)
		}
	}

	if d <= 0 {
		return 0, fmt.Errorf("%w: %q is not positive", ErrInvalidTimeout, value)
	}

	return d, nil
}
