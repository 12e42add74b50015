package validator

import (
	"context"
	"fmt"
	"time"

	"github.com/addrkit/addrkit/types"
)

type lookupOutcome struct {
	records []types.MX
	err     error
}

// lookupWithTimeout races the resolver against a timer. The resolver call has
// no cancellation primitive of its own; when the timer wins, the goroutine is
// abandoned and its eventual outcome discarded. The channel is buffered so the
// loser can always complete its send and exit.
func (v *EmailValidator) lookupWithTimeout(ctx context.Context, domain string) ([]types.MX, error) {
	outcome := make(chan lookupOutcome, 1)

	go func() {
		records, err := v.resolver.LookupMX(ctx, domain)
		outcome <- lookupOutcome{records: records, err: err}
	}()

	timer := time.NewTimer(v.timeout)
	defer timer.Stop()

	select {
	case o := <-outcome:
		return o.records, o.err
	case <-timer.C:
		return nil, fmt.Errorf("%w: %s elapsed resolving %q", ErrDNSLookupTimeout, v.timeout, domain)
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrDNSLookupTimeout, ctx.Err())
	}
}
