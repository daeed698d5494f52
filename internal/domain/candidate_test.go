package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidate_AssetURL(t *testing.T) {
	tests := []struct {
		name      string
		candidate Candidate
		path      string
		want      string
	}{
		{
			name:      "prefix and leading slash",
			candidate: Candidate{Hostname: "ccgstatic.com", PathPrefix: "games/", Protocol: ProtocolHTTPS},
			path:      "/slope/index.html",
			want:      "https://ccgstatic.com/games/slope/index.html",
		},
		{
			name:      "empty prefix",
			candidate: Candidate{Hostname: "bucket.example", Protocol: ProtocolHTTP},
			path:      "slope/index.html",
			want:      "http://bucket.example/slope/index.html",
		},
		{
			name:      "unset protocol falls back to https",
			candidate: Candidate{Hostname: "cdn.example", PathPrefix: "g/"},
			path:      "a.js",
			want:      "https://cdn.example/g/a.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.candidate.AssetURL(tt.path))
		})
	}
}

func TestCandidate_URL(t *testing.T) {
	c := Candidate{Hostname: "cdn.example", PathPrefix: "games/", Protocol: ProtocolHTTPS}

	assert.Equal(t, "https://cdn.example/blocked_res.txt", c.URL(ChallengePath))
	assert.Equal(t, "https://cdn.example", c.Origin())
}

func TestCandidate_Validate(t *testing.T) {
	require.NoError(t, Candidate{Hostname: "cdn.example", Protocol: ProtocolHTTPS}.Validate())

	err := Candidate{Protocol: ProtocolHTTPS}.Validate()
	assert.True(t, errors.Is(err, ErrInvalidCandidate))

	err = Candidate{Hostname: "cdn.example/games", Protocol: ProtocolHTTPS}.Validate()
	assert.ErrorIs(t, err, ErrInvalidCandidate)

	err = Candidate{Hostname: "cdn.example", Protocol: "ftp"}.Validate()
	assert.ErrorIs(t, err, ErrInvalidCandidate)
}

func TestSortByPriority_StableForTies(t *testing.T) {
	candidates := []Candidate{
		{Hostname: "c", Priority: 3},
		{Hostname: "a1", Priority: 1},
		{Hostname: "b", Priority: 2},
		{Hostname: "a2", Priority: 1},
	}

	SortByPriority(candidates)

	var order []string
	for _, c := range candidates {
		order = append(order, c.Hostname)
	}
	assert.Equal(t, []string{"a1", "a2", "b", "c"}, order)
}

func TestNormalizePriority(t *testing.T) {
	assert.Equal(t, 1, NormalizePriority(0))
	assert.Equal(t, 1, NormalizePriority(-4))
	assert.Equal(t, 7, NormalizePriority(7))
}

func TestMinPriorityAndFind(t *testing.T) {
	assert.Equal(t, 0, MinPriority(nil))

	static := StaticCandidates()
	assert.Equal(t, 1, MinPriority(static))

	c, ok := FindCandidate(static, "CCPORTED.click")
	require.True(t, ok)
	assert.Equal(t, "Ellay", c.Name)

	_, ok = FindCandidate(static, "unknown.example")
	assert.False(t, ok)
}

func TestStaticCandidates_UniqueHostnames(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range StaticCandidates() {
		require.NoError(t, c.Validate())
		assert.False(t, seen[c.Hostname], "duplicate hostname %s", c.Hostname)
		seen[c.Hostname] = true
		assert.GreaterOrEqual(t, c.Priority, 1)
	}
}
