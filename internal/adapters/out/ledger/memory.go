// Package ledger provides the session-scoped probe response ledger.
package ledger

import (
	"sort"
	"strings"
	"sync"

	"github.com/bnema/edgeselect/internal/boundaries/out"
	"github.com/bnema/edgeselect/internal/domain"
)

// Ensure Memory implements out.ResponseLedger.
var _ out.ResponseLedger = (*Memory)(nil)

// Memory keeps the latest probe result per hostname. Entries are never
// evicted during a session.
type Memory struct {
	mu      sync.RWMutex
	results map[string]domain.ProbeResult
}

// NewMemory creates an empty ledger.
func NewMemory() *Memory {
	return &Memory{
		results: make(map[string]domain.ProbeResult),
	}
}

// Record replaces the entry for result.Hostname. Last write wins.
func (m *Memory) Record(result domain.ProbeResult) {
	key := strings.ToLower(result.Hostname)

	m.mu.Lock()
	m.results[key] = result
	m.mu.Unlock()
}

// Get returns the latest result for hostname.
func (m *Memory) Get(hostname string) (domain.ProbeResult, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.results[strings.ToLower(hostname)]
	return r, ok
}

// All returns every entry sorted by hostname.
func (m *Memory) All() []domain.ProbeResult {
	m.mu.RLock()
	all := make([]domain.ProbeResult, 0, len(m.results))
	for _, r := range m.results {
		all = append(all, r)
	}
	m.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].Hostname < all[j].Hostname
	})
	return all
}
