package commands

import (
	"net"
)

// CheckResult is the JSON-lines record emitted per address. Version marks the
// record layout, bump it when fields change meaning.
type CheckResult struct {
	Email      string `json:"email"`
	Valid      bool   `json:"valid"`
	Code       string `json:"code,omitempty"`
	Cached     bool   `json:"cached"`
	Disposable bool   `json:"disposable"`
	Version    int    `json:"version"`
}

type ReportStats struct {
	Passed   uint64            `json:"passed"`
	Rejected uint64            `json:"rejected"`
	ByCode   map[string]uint64 `json:"by_code,omitempty"`
	Duration int64             `json:"run_duration_ms"`
}

type CheckSettings struct {
	Format  string
	Workers uint
	CSV     csvOptions
	Check   checkOptions
}

type checkOptions struct {
	Resolver        net.IP
	Timeout         string
	SkipMX          bool
	WithDisposable  bool
	ExtraDisposable []string
}

type csvOptions struct {
	skipRows uint64
	column   uint64
}

type ReportSettings struct {
	Details string
}
