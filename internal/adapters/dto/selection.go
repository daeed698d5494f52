package dto

import (
	"time"

	"github.com/bnema/edgeselect/internal/domain"
)

// Candidate is the wire form of a delivery host.
type Candidate struct {
	Name       string `json:"name" yaml:"name"`
	Hostname   string `json:"hostname" yaml:"hostname"`
	PathPrefix string `json:"path_prefix" yaml:"path_prefix"`
	Priority   int    `json:"priority" yaml:"priority"`
	Protocol   string `json:"protocol" yaml:"protocol"`
	Source     string `json:"source,omitempty" yaml:"source,omitempty"`
}

// SelectionResponse describes the session binding.
type SelectionResponse struct {
	State     string     `json:"state" yaml:"state"`
	Candidate *Candidate `json:"candidate,omitempty" yaml:"candidate,omitempty"`
	BoundAt   *time.Time `json:"bound_at,omitempty" yaml:"bound_at,omitempty"`
	AssetBase string     `json:"asset_base,omitempty" yaml:"asset_base,omitempty"`
	LastError string     `json:"last_error,omitempty" yaml:"last_error,omitempty"`
}

// ResolveResponse is returned by a resolution round.
type ResolveResponse struct {
	Strategy  string     `json:"strategy" yaml:"strategy"`
	Candidate *Candidate `json:"candidate" yaml:"candidate"`
}

// CandidatesResponse lists known candidates.
type CandidatesResponse struct {
	Candidates []Candidate `json:"candidates" yaml:"candidates"`
}

// FromCandidate converts a domain candidate.
func FromCandidate(c domain.Candidate) Candidate {
	return Candidate{
		Name:       c.Name,
		Hostname:   c.Hostname,
		PathPrefix: c.PathPrefix,
		Priority:   c.Priority,
		Protocol:   string(c.Protocol),
		Source:     string(c.Source),
	}
}

// FromCandidates converts a candidate list.
func FromCandidates(cs []domain.Candidate) []Candidate {
	out := make([]Candidate, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCandidate(c))
	}
	return out
}

// FromSnapshot converts a session snapshot.
func FromSnapshot(s domain.SessionSnapshot) SelectionResponse {
	resp := SelectionResponse{State: string(s.State), LastError: s.LastError}
	if s.Selection != nil {
		c := FromCandidate(s.Selection.Candidate)
		boundAt := s.Selection.BoundAt
		resp.Candidate = &c
		resp.BoundAt = &boundAt
		resp.AssetBase = s.Selection.Candidate.AssetURL("")
	}
	return resp
}
