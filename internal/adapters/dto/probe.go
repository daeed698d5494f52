package dto

import (
	"time"

	"github.com/bnema/edgeselect/internal/domain"
)

// ProbeResult is the wire form of a ledger entry.
type ProbeResult struct {
	Hostname  string    `json:"hostname" yaml:"hostname"`
	Success   bool      `json:"success" yaml:"success"`
	Stage     int       `json:"stage" yaml:"stage"`
	Reason    string    `json:"reason" yaml:"reason"`
	Detail    string    `json:"detail,omitempty" yaml:"detail,omitempty"`
	LatencyMs int64     `json:"latency_ms" yaml:"latency_ms"`
	ElapsedMs int64     `json:"elapsed_ms" yaml:"elapsed_ms"`
	CheckedAt time.Time `json:"checked_at" yaml:"checked_at"`
}

// ProbesResponse lists ledger entries.
type ProbesResponse struct {
	Probes []ProbeResult `json:"probes" yaml:"probes"`
}

// FromProbeResult converts a probe result.
func FromProbeResult(r domain.ProbeResult) ProbeResult {
	return ProbeResult{
		Hostname:  r.Hostname,
		Success:   r.Success,
		Stage:     int(r.Stage),
		Reason:    string(r.Reason),
		Detail:    r.Detail,
		LatencyMs: r.Latency.Milliseconds(),
		ElapsedMs: r.Elapsed.Milliseconds(),
		CheckedAt: r.CheckedAt,
	}
}

// FromProbeResults converts a list of probe results.
func FromProbeResults(rs []domain.ProbeResult) []ProbeResult {
	out := make([]ProbeResult, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromProbeResult(r))
	}
	return out
}
