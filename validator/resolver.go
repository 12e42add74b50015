package validator

import (
	"context"
	"net"
	"sort"
	"strings"

	"github.com/addrkit/addrkit/types"
)

// NewNetResolver wraps a *net.Resolver into an MXResolver. A nil argument
// falls back to net.DefaultResolver.
func NewNetResolver(r *net.Resolver) NetResolver {

	// @todo fix when Go's stdlib offers a nicer API for this
	if r == nil {
		r = net.DefaultResolver
	}

	return NetResolver{resolver: r}
}

// NewCustomNetResolver builds a resolver that sends all queries to a specific
// name server, port 53.
func NewCustomNetResolver(ip net.IP) NetResolver {
	return NetResolver{resolver: &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			d := net.Dialer{}
			return d.DialContext(ctx, network, net.JoinHostPort(ip.String(), `53`))
		},
	}}
}

type NetResolver struct {
	resolver *net.Resolver
}

// LookupMX fetches the MX records for a domain, sorted by preference. Bogus
// exchanger hosts (a bare ".", syntax-mangled answers) are weeded out; the
// lookup error, if any, is passed through untouched for classification.
func (n NetResolver) LookupMX(ctx context.Context, domain string) ([]types.MX, error) {
	mxs, err := n.resolver.LookupMX(ctx, domain)
	if err != nil {
		return nil, err
	}

	// Reading an external source, limiting to a liberal amount
	var allocateMax = 10
	if l := len(mxs); l < allocateMax {
		allocateMax = l
	}

	var collected = make([]types.MX, 0, allocateMax)
	for _, mx := range mxs[:allocateMax] {
		host := strings.TrimRight(mx.Host, ".")
		if MightBeAHostOrIP(host) {
			collected = append(collected, types.MX{Host: host, Pref: mx.Pref})
		}
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].Pref < collected[j].Pref
	})

	return collected, nil
}
