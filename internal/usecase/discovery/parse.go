package discovery

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"github.com/bnema/edgeselect/internal/domain"
)

// ProxyTag marks accepted records in the proxy manifest.
const ProxyTag = "SERVER"

// ParseManifest parses the same-origin manifest: one "hostname,name,pathPrefix"
// record per line. Priority is the 1-based position among accepted records.
func ParseManifest(body []byte, proto domain.Protocol) []domain.Candidate {
	var candidates []domain.Candidate

	scanner := bufio.NewScanner(bytes.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			continue
		}

		c := domain.Candidate{
			Hostname: strings.TrimSpace(fields[0]),
			Name:     strings.TrimSpace(fields[1]),
			Protocol: proto,
			Source:   domain.SourceManifest,
		}
		if len(fields) > 2 {
			c.PathPrefix = normalizePrefix(fields[2])
		}
		if c.Validate() != nil {
			continue
		}

		c.Priority = len(candidates) + 1
		candidates = append(candidates, c)
	}

	return candidates
}

// ParseProxyManifest parses the proxy manifest: whitespace separated
// "SERVER hostname name [path [priority]]" records. Lines with another tag are
// ignored. A missing or invalid priority falls back to record order.
func ParseProxyManifest(body []byte) []domain.Candidate {
	var candidates []domain.Candidate

	scanner := bufio.NewScanner(bytes.NewReader(body))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 || fields[0] != ProxyTag {
			continue
		}

		c := domain.Candidate{
			Hostname: fields[1],
			Name:     fields[2],
			Protocol: domain.ProtocolHTTP,
			Source:   domain.SourceProxy,
		}
		if len(fields) > 3 && fields[3] != "-" {
			c.PathPrefix = normalizePrefix(fields[3])
		}
		if c.Validate() != nil {
			continue
		}

		c.Priority = len(candidates) + 1
		if len(fields) > 4 {
			if p, err := strconv.Atoi(fields[4]); err == nil && p > 0 {
				c.Priority = p
			}
		}
		candidates = append(candidates, c)
	}

	return candidates
}

// normalizePrefix trims slashes on the left and guarantees one on the right.
func normalizePrefix(p string) string {
	p = strings.TrimLeft(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

// merge concatenates lists in order, dropping repeated hostnames.
func merge(lists ...[]domain.Candidate) []domain.Candidate {
	seen := make(map[string]bool)
	var merged []domain.Candidate

	for _, list := range lists {
		for _, c := range list {
			key := strings.ToLower(c.Hostname)
			if seen[key] {
				continue
			}
			seen[key] = true
			c.Priority = domain.NormalizePriority(c.Priority)
			merged = append(merged, c)
		}
	}

	return merged
}
