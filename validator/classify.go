package validator

import (
	"errors"
	"net"
	"strings"
	"syscall"
)

// dnsFailureSignatures are message fragments that mark a failure as a
// resolution-level problem, for resolvers that don't surface a structured
// error. Checked only after the structured checks came up empty.
var dnsFailureSignatures = []string{
	"no such host",
	"not found",
	"no data",
	"nxdomain",
	"connection refused",
	"server misbehaving",
	"i/o timeout",
	"timeout",
}

// ClassifyLookupError buckets a resolver failure into CodeDNSLookupFailed
// (the domain side is broken: nonexistent domain, no data, refused or
// timed-out resolution) or CodeMXLookupFailed (everything else, notably an
// unreachable local network and unrecognized failures).
//
// Structured error fields win over message matching. Network-unreachable is
// deliberately kept out of the DNS bucket: it points at a local connectivity
// problem, not at the target domain lacking usable MX records.
func ClassifyLookupError(err error) Code {
	if err == nil {
		return ""
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsNotFound || dnsErr.IsTimeout {
			return CodeDNSLookupFailed
		}
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ENETUNREACH, syscall.EHOSTUNREACH:
			return CodeMXLookupFailed
		case syscall.ECONNREFUSED, syscall.ETIMEDOUT:
			return CodeDNSLookupFailed
		}
	}

	msg := strings.ToLower(err.Error())

	if strings.Contains(msg, "network is unreachable") {
		return CodeMXLookupFailed
	}

	for _, sig := range dnsFailureSignatures {
		if strings.Contains(msg, sig) {
			return CodeDNSLookupFailed
		}
	}

	return CodeMXLookupFailed
}
