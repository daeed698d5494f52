package resolver

import "github.com/bnema/edgeselect/internal/domain"

// ranked is a successful candidate tagged with its position in the
// priority-sorted round, which preserves discovery order between ties.
type ranked struct {
	candidate domain.Candidate
	order     int
}

// better reports whether a outranks b.
func (a ranked) better(b ranked) bool {
	if a.candidate.Priority != b.candidate.Priority {
		return a.candidate.Priority < b.candidate.Priority
	}
	return a.order < b.order
}

// picker consumes successes in completion order and decides when to stop.
type picker interface {
	// offer records a success and reports whether the round may stop reading.
	offer(r ranked) bool
	// best returns the chosen candidate, nil when nothing succeeded.
	best() *ranked
}

func newPicker(strategy domain.Strategy, floor, margin int) picker {
	switch strategy {
	case domain.StrategyFirstAvailable, domain.StrategyFastestFirst:
		return &firstPicker{}
	case domain.StrategySmartWait:
		return &smartPicker{floor: floor, margin: margin}
	default:
		return &optimalPicker{}
	}
}

// firstPicker takes the first success regardless of priority.
type firstPicker struct {
	chosen *ranked
}

func (p *firstPicker) offer(r ranked) bool {
	if p.chosen == nil {
		p.chosen = &r
	}
	return true
}

func (p *firstPicker) best() *ranked { return p.chosen }

// optimalPicker keeps the best candidate seen. It stops early only on a
// priority 1 success; otherwise every probe settles so equal priorities keep
// discovery order.
type optimalPicker struct {
	chosen *ranked
}

func (p *optimalPicker) offer(r ranked) bool {
	if p.chosen == nil || r.better(*p.chosen) {
		p.chosen = &r
	}
	return p.chosen.candidate.Priority == 1
}

func (p *optimalPicker) best() *ranked { return p.chosen }

// smartPicker stops on a second success at the best level seen, or once the
// best seen is within margin of the best priority present in the round.
type smartPicker struct {
	floor   int
	margin  int
	chosen  *ranked
	atLevel int
}

func (p *smartPicker) offer(r ranked) bool {
	switch {
	case p.chosen == nil || r.candidate.Priority < p.chosen.candidate.Priority:
		p.chosen = &r
		p.atLevel = 1
	case r.candidate.Priority == p.chosen.candidate.Priority:
		if r.better(*p.chosen) {
			p.chosen = &r
		}
		p.atLevel++
	}

	prio := p.chosen.candidate.Priority
	return p.atLevel >= 2 || prio-p.floor <= p.margin
}

func (p *smartPicker) best() *ranked { return p.chosen }
