package cultural

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/types"
)

func TestProfileEmptyTextIsNeutral(t *testing.T) {
	p := NewKeywordProfiler(DefaultConfig())

	for _, text := range []string{"", "   ", "\n\t"} {
		profile := p.Profile(text)
		assert.Equal(t, types.NeutralCulturalProfile(), profile)
	}
}

func TestProfileAlwaysCarriesAllDimensions(t *testing.T) {
	p := NewKeywordProfiler(DefaultConfig())

	profile := p.Profile("we collaborate constantly")

	require.Len(t, profile, len(types.CulturalDimensions))
	for _, dim := range types.CulturalDimensions {
		_, ok := profile[dim]
		assert.True(t, ok, "missing dimension %s", dim)
	}
}

func TestProfileTieredSignals(t *testing.T) {
	p := NewKeywordProfiler(DefaultConfig())

	t.Run("one match", func(t *testing.T) {
		profile := p.Profile("we value innovation above all")
		assert.Equal(t, types.CulturalSignal{Score: 0.6, Confidence: 0.6}, profile[types.DimensionInnovation])
	})

	t.Run("two matches", func(t *testing.T) {
		profile := p.Profile("an innovative team driving innovation")
		assert.Equal(t, types.CulturalSignal{Score: 0.7, Confidence: 0.8}, profile[types.DimensionInnovation])
	})

	t.Run("three or more matches cap the tier", func(t *testing.T) {
		profile := p.Profile("our team loves teamwork; teams collaborate daily")
		assert.Equal(t, types.CulturalSignal{Score: 0.8, Confidence: 0.9}, profile[types.DimensionTeamwork])

		saturated := p.Profile("team team team team teamwork collaboration")
		assert.Equal(t, profile[types.DimensionTeamwork], saturated[types.DimensionTeamwork])
	})

	t.Run("no evidence stays neutral", func(t *testing.T) {
		profile := p.Profile("we value innovation above all")
		assert.Equal(t, types.NeutralSignal(), profile[types.DimensionCustomerFocus])
	})
}

func TestProfileMatchesWholeWordsOnly(t *testing.T) {
	p := NewKeywordProfiler(DefaultConfig())

	// "steamroller" must not count as "team".
	profile := p.Profile("the steamroller flattened the road")
	assert.Equal(t, types.NeutralSignal(), profile[types.DimensionTeamwork])
}

func TestCompatibilityIdenticalProfilesScoreOne(t *testing.T) {
	p := NewKeywordProfiler(DefaultConfig())
	profile := p.Profile("a collaborative team shipping innovative customer features fast")

	fit := Compatibility(profile, profile)
	assert.InDelta(t, 1.0, fit.Score, 1e-9)
}

func TestCompatibilityRange(t *testing.T) {
	p := NewKeywordProfiler(DefaultConfig())

	texts := []string{
		"",
		"collaborative remote-first team",
		"fast-paced startup, customers first, innovation daily",
		"structured methodical office environment",
	}
	for _, a := range texts {
		for _, b := range texts {
			fit := Compatibility(p.Profile(a), p.Profile(b))
			require.GreaterOrEqual(t, fit.Score, 0.0)
			require.LessOrEqual(t, fit.Score, 1.0)
			require.GreaterOrEqual(t, fit.Confidence, 0.0)
			require.LessOrEqual(t, fit.Confidence, 1.0)
		}
	}
}

func TestCompatibilityLowConfidenceFloor(t *testing.T) {
	// Two all-neutral profiles carry confidence 0.3 each, under the
	// threshold, so the reported confidence clamps to the floor while the
	// score is untouched.
	fit := Compatibility(types.NeutralCulturalProfile(), types.NeutralCulturalProfile())

	assert.InDelta(t, 1.0, fit.Score, 1e-9)
	assert.InDelta(t, lowConfidenceFloor, fit.Confidence, 1e-9)
}

func TestCompatibilityTreatsNilAsNeutral(t *testing.T) {
	p := NewKeywordProfiler(DefaultConfig())
	profile := p.Profile("team team team")

	withNil := Compatibility(nil, profile)
	withNeutral := Compatibility(types.NeutralCulturalProfile(), profile)
	assert.Equal(t, withNeutral, withNil)
}
