package types

// MX is a single mail exchange target for a domain. Lower Pref means higher
// priority, following DNS semantics.
type MX struct {
	Host string `json:"exchange"`
	Pref uint16 `json:"priority"`
}
