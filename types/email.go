package types

import (
	"errors"
	"strings"
)

var ErrInvalidEmailAddress = errors.New("invalid e-mail address, expecting local@domain")

// EmailParts is an address decomposed around its last @. The domain is
// lowercased on construction, DNS names are case-insensitive and every lookup
// and cache key downstream relies on that.
type EmailParts struct {
	Address string
	Local   string
	Domain  string
}

// NewEmailParts splits an address into its local and domain part. Both sides
// of the @ must be non-empty; anything more thorough is the validator's job.
func NewEmailParts(emailAddress string) (EmailParts, error) {
	at := strings.LastIndex(emailAddress, "@")
	if at <= 0 || at >= len(emailAddress)-1 {
		return EmailParts{}, ErrInvalidEmailAddress
	}

	return EmailParts{
		Address: emailAddress,
		Local:   emailAddress[:at],
		Domain:  strings.ToLower(emailAddress[at+1:]),
	}, nil
}
