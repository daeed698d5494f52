package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Protocol is the URL scheme used to reach a candidate.
type Protocol string

const (
	ProtocolHTTP  Protocol = "http"
	ProtocolHTTPS Protocol = "https"
)

// Valid reports whether p is a supported scheme.
func (p Protocol) Valid() bool {
	return p == ProtocolHTTP || p == ProtocolHTTPS
}

// DiscoverySource identifies where a candidate was learned from.
type DiscoverySource string

const (
	SourceStatic   DiscoverySource = "static"
	SourceManifest DiscoverySource = "manifest"
	SourceProxy    DiscoverySource = "proxy"
)

// Candidate is a content-delivery host that may serve game assets.
type Candidate struct {
	Name       string          `json:"name" yaml:"name" mapstructure:"name"`
	Hostname   string          `json:"hostname" yaml:"hostname" mapstructure:"hostname"`
	PathPrefix string          `json:"path_prefix" yaml:"path_prefix" mapstructure:"path"`
	Priority   int             `json:"priority" yaml:"priority" mapstructure:"priority"`
	Protocol   Protocol        `json:"protocol" yaml:"protocol" mapstructure:"protocol"`
	Source     DiscoverySource `json:"source" yaml:"source" mapstructure:"-"`
}

// Origin returns the scheme and host of the candidate, e.g. "https://cdn.example".
func (c Candidate) Origin() string {
	proto := c.Protocol
	if !proto.Valid() {
		proto = ProtocolHTTPS
	}
	return string(proto) + "://" + c.Hostname
}

// URL joins an absolute path onto the candidate origin.
func (c Candidate) URL(path string) string {
	return c.Origin() + "/" + strings.TrimPrefix(path, "/")
}

// AssetURL builds the delivery URL for a catalog asset path.
func (c Candidate) AssetURL(assetPath string) string {
	return c.Origin() + "/" + c.PathPrefix + strings.TrimPrefix(assetPath, "/")
}

// Validate checks that the candidate can be probed.
func (c Candidate) Validate() error {
	if c.Hostname == "" {
		return fmt.Errorf("%w: empty hostname", ErrInvalidCandidate)
	}
	if strings.ContainsAny(c.Hostname, "/ \t") {
		return fmt.Errorf("%w: malformed hostname %q", ErrInvalidCandidate, c.Hostname)
	}
	if !c.Protocol.Valid() {
		return fmt.Errorf("%w: unsupported protocol %q for %s", ErrInvalidCandidate, c.Protocol, c.Hostname)
	}
	return nil
}

// NormalizePriority clamps p to the lowest legal priority value of 1.
func NormalizePriority(p int) int {
	if p < 1 {
		return 1
	}
	return p
}

// SortByPriority orders candidates by ascending priority, keeping discovery
// order between equal priorities.
func SortByPriority(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Priority < candidates[j].Priority
	})
}

// MinPriority returns the best priority present in candidates, or 0 if empty.
func MinPriority(candidates []Candidate) int {
	best := 0
	for i, c := range candidates {
		if i == 0 || c.Priority < best {
			best = c.Priority
		}
	}
	return best
}

// FindCandidate looks a hostname up in candidates.
func FindCandidate(candidates []Candidate, hostname string) (Candidate, bool) {
	for _, c := range candidates {
		if strings.EqualFold(c.Hostname, hostname) {
			return c, true
		}
	}
	return Candidate{}, false
}

// StaticCandidates returns the compiled-in fallback list.
func StaticCandidates() []Candidate {
	return []Candidate{
		{Name: "Charlie", Hostname: "ccgstatic.com", PathPrefix: "games/", Priority: 1, Protocol: ProtocolHTTPS, Source: SourceStatic},
		{Name: "Ellay", Hostname: "ccported.click", PathPrefix: "games/", Priority: 2, Protocol: ProtocolHTTPS, Source: SourceStatic},
		{Name: "Olympic", Hostname: "d1yh00vn2fvto7.cloudfront.net", PathPrefix: "games/", Priority: 3, Protocol: ProtocolHTTPS, Source: SourceStatic},
		{Name: "Shafiyoon", Hostname: "d1cp3xh9gda0oe.cloudfront.net", PathPrefix: "games/", Priority: 3, Protocol: ProtocolHTTPS, Source: SourceStatic},
		{Name: "Racecar", Hostname: "d1vqjbyryjpk97.cloudfront.net", PathPrefix: "games/", Priority: 3, Protocol: ProtocolHTTPS, Source: SourceStatic},
		{Name: "Bell", Hostname: "ccportedgames.s3.us-west-2.amazonaws.com", PathPrefix: "", Priority: 4, Protocol: ProtocolHTTPS, Source: SourceStatic},
	}
}
