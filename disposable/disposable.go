// Package disposable answers whether a domain belongs to a known
// throwaway-mail provider. The set is static, membership is a plain lookup.
package disposable

import "strings"

// defaultDomains is a trimmed-down list of well known throwaway providers.
// Additions belong at the end, the set doesn't care about order.
var defaultDomains = []string{
	"0-mail.com",
	"10minutemail.com",
	"10minutemail.net",
	"20minutemail.com",
	"33mail.com",
	"anonbox.net",
	"anonymbox.com",
	"burnermail.io",
	"byom.de",
	"deadaddress.com",
	"discard.email",
	"dispostable.com",
	"emailondeck.com",
	"fakeinbox.com",
	"fakemailgenerator.com",
	"getairmail.com",
	"getnada.com",
	"grr.la",
	"guerrillamail.biz",
	"guerrillamail.com",
	"guerrillamail.de",
	"guerrillamail.net",
	"guerrillamail.org",
	"guerrillamailblock.com",
	"harakirimail.com",
	"inboxalias.com",
	"incognitomail.org",
	"jetable.org",
	"mail-temporaire.fr",
	"mailcatch.com",
	"maildrop.cc",
	"maileater.com",
	"mailexpire.com",
	"mailinator.com",
	"mailinator.net",
	"mailnesia.com",
	"mailnull.com",
	"mailsac.com",
	"mintemail.com",
	"mohmal.com",
	"mytrashmail.com",
	"nada.email",
	"no-spam.ws",
	"nospam.ze.tc",
	"objectmail.com",
	"onewaymail.com",
	"owlymail.com",
	"pokemail.net",
	"proxymail.eu",
	"rcpt.at",
	"sharklasers.com",
	"spam4.me",
	"spamavert.com",
	"spambog.com",
	"spambog.de",
	"spambog.ru",
	"spambox.us",
	"spamfree24.com",
	"spamfree24.de",
	"spamfree24.org",
	"spamgourmet.com",
	"spamspot.com",
	"tempail.com",
	"tempinbox.com",
	"tempmail.de",
	"tempmail.net",
	"tempmailaddress.com",
	"tempr.email",
	"throwawaymail.com",
	"trash-mail.com",
	"trash-mail.de",
	"trashmail.at",
	"trashmail.com",
	"trashmail.me",
	"trashmail.net",
	"wegwerfmail.de",
	"wegwerfmail.net",
	"wegwerfmail.org",
	"yopmail.com",
	"yopmail.fr",
	"yopmail.net",
}

// New builds the provider set. Extra domains supplement the built-in list and
// are normalized the same way lookups are.
func New(extra ...string) *Set {
	s := &Set{
		domains: make(map[string]struct{}, len(defaultDomains)+len(extra)),
	}

	for _, d := range defaultDomains {
		s.domains[d] = struct{}{}
	}

	for _, d := range extra {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}

		s.domains[d] = struct{}{}
	}

	return s
}

type Set struct {
	domains map[string]struct{}
}

// Contains reports whether the domain is operated by a disposable-mail
// provider. The argument doesn't need to be lowercased already.
func (s *Set) Contains(domain string) bool {
	_, ok := s.domains[strings.ToLower(domain)]
	return ok
}

// Len returns the amount of known provider domains.
func (s *Set) Len() int {
	return len(s.domains)
}
