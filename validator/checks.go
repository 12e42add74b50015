package validator

import (
	"fmt"
	"net/mail"

	"github.com/addrkit/addrkit/types"
)

// FormatCheckFn verifies an address syntactically. A nil return means the
// parts look like a deliverable address.
type FormatCheckFn func(parts types.EmailParts) error

// checkEmailAddressSyntax checks for "common sense" e-mail address syntax. It doesn't try to be fully compliant.
func checkEmailAddressSyntax(parts types.EmailParts) error {
	if _, err := mail.ParseAddress(parts.Address); err != nil {
		return ValidationError{
			Check:    "checkEmailAddressSyntax",
			Internal: err,
			error:    ErrEmailAddressSyntax,
		}
	}

	// Perform additional checks to weed out commonly occurring errors (see tests for details)
	if !looksLikeValidLocalPart(parts.Local) {
		return ValidationError{
			Check:    "checkEmailAddressSyntax",
			Internal: fmt.Errorf("local part '%s' has invalid syntax", parts.Local),
			error:    ErrEmailAddressSyntax,
		}
	}

	if !looksLikeValidDomain(parts.Domain) {
		return ValidationError{
			Check:    "checkEmailAddressSyntax",
			Internal: fmt.Errorf("domain part '%s' has invalid syntax", parts.Domain),
			error:    ErrEmailAddressSyntax,
		}
	}

	return nil
}
