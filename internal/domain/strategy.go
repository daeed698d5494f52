package domain

import (
	"fmt"
	"strings"
)

// Strategy decides when a resolution round may stop reading probe successes.
type Strategy string

const (
	// StrategyFirstAvailable returns the first success regardless of priority.
	StrategyFirstAvailable Strategy = "first-available"
	// StrategyPriorityOptimal returns the best-priority success, stopping early on priority 1.
	StrategyPriorityOptimal Strategy = "priority-optimal"
	// StrategySmartWait trades a little priority for latency.
	StrategySmartWait Strategy = "smart-wait"
	// StrategyFastestFirst returns the first success; ties never arise.
	StrategyFastestFirst Strategy = "fastest-first"
)

// DefaultStrategy is used when none is configured.
const DefaultStrategy = StrategyPriorityOptimal

// Strategies lists every supported strategy.
func Strategies() []Strategy {
	return []Strategy{StrategyFirstAvailable, StrategyPriorityOptimal, StrategySmartWait, StrategyFastestFirst}
}

// ParseStrategy converts a configuration string to a Strategy.
// An empty string yields DefaultStrategy.
func ParseStrategy(s string) (Strategy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultStrategy, nil
	}
	for _, st := range Strategies() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
}
