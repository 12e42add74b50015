package validator

import (
	"context"
	"time"

	"github.com/addrkit/addrkit/types"
)

// MXResolver resolves the mail exchangers for a domain.
type MXResolver interface {
	LookupMX(ctx context.Context, domain string) ([]types.MX, error)
}

// MXCache is the slice of mxcache.Cache the validator needs.
type MXCache interface {
	Get(domain string) ([]types.MX, bool)
	Set(domain string, records []types.MX, ttl time.Duration)
}

// DisposableLookup is a membership test over known throwaway-mail domains.
type DisposableLookup interface {
	Contains(domain string) bool
}
