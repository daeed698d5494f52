package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/edgeselect/internal/domain"
)

func r(host string, prio, order int) ranked {
	return ranked{candidate: domain.Candidate{Hostname: host, Priority: prio}, order: order}
}

func TestPicker_FirstAvailable(t *testing.T) {
	for _, st := range []domain.Strategy{domain.StrategyFirstAvailable, domain.StrategyFastestFirst} {
		p := newPicker(st, 1, 1)

		assert.True(t, p.offer(r("slow-cdn", 4, 5)))
		require.NotNil(t, p.best())
		assert.Equal(t, "slow-cdn", p.best().candidate.Hostname)
	}
}

func TestPicker_PriorityOptimal(t *testing.T) {
	p := newPicker(domain.StrategyPriorityOptimal, 1, 1)

	assert.Nil(t, p.best())
	assert.False(t, p.offer(r("c", 3, 3)))
	assert.False(t, p.offer(r("b", 2, 2)))
	assert.False(t, p.offer(r("d", 3, 4)))
	assert.Equal(t, "b", p.best().candidate.Hostname)
	assert.True(t, p.offer(r("a", 1, 0)))
	assert.Equal(t, "a", p.best().candidate.Hostname)
}

func TestPicker_PriorityOptimal_TieBrokenByOrder(t *testing.T) {
	p := newPicker(domain.StrategyPriorityOptimal, 1, 1)

	p.offer(r("later", 2, 3))
	p.offer(r("earlier", 2, 1))

	assert.Equal(t, "earlier", p.best().candidate.Hostname)
}

func TestPicker_PriorityOptimal_NoPriorityOneWaitsForAll(t *testing.T) {
	p := newPicker(domain.StrategyPriorityOptimal, 2, 1)

	// b finishes first but a was discovered first at the same priority.
	assert.False(t, p.offer(r("b", 2, 1)))
	assert.False(t, p.offer(r("a", 2, 0)))
	assert.Equal(t, "a", p.best().candidate.Hostname)
}

func TestPicker_SmartWait(t *testing.T) {
	t.Run("within margin", func(t *testing.T) {
		p := newPicker(domain.StrategySmartWait, 1, 1)
		assert.True(t, p.offer(r("b", 2, 1)))
	})

	t.Run("outside margin keeps waiting", func(t *testing.T) {
		p := newPicker(domain.StrategySmartWait, 1, 1)
		assert.False(t, p.offer(r("c", 3, 2)))
		assert.True(t, p.offer(r("b", 2, 1)))
		assert.Equal(t, "b", p.best().candidate.Hostname)
	})

	t.Run("second success at best level", func(t *testing.T) {
		p := newPicker(domain.StrategySmartWait, 1, 0)
		assert.False(t, p.offer(r("c2", 3, 4)))
		assert.True(t, p.offer(r("c1", 3, 3)))
		assert.Equal(t, "c1", p.best().candidate.Hostname)
	})

	t.Run("better level resets count", func(t *testing.T) {
		p := newPicker(domain.StrategySmartWait, 1, 0)
		assert.False(t, p.offer(r("c", 3, 3)))
		assert.False(t, p.offer(r("b", 2, 2)))
		assert.True(t, p.offer(r("b2", 2, 1)))
		assert.Equal(t, "b2", p.best().candidate.Hostname)
	})

	t.Run("priority one", func(t *testing.T) {
		p := newPicker(domain.StrategySmartWait, 1, 0)
		assert.True(t, p.offer(r("a", 1, 0)))
	})
}
