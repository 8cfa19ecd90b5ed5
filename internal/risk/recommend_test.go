package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"riskscreen/internal/disease"
)

func TestRecommendationsCoverEveryCombination(t *testing.T) {
	tiers := []Tier{TierLow, TierMedium, TierHigh}
	for _, id := range disease.IDs() {
		for _, tier := range tiers {
			a := Recommendations(id, tier)
			assert.NotEmpty(t, a.Lifestyle, "%s/%s lifestyle", id, tier)
			assert.NotEmpty(t, a.Diet, "%s/%s diet", id, tier)
			assert.NotEmpty(t, a.Medical, "%s/%s medical", id, tier)
			assert.NotEmpty(t, a.Prevention, "%s/%s prevention", id, tier)
		}
	}
}

func TestRecommendationsFallback(t *testing.T) {
	a := Recommendations(disease.ID("unknown"), TierHigh)
	assert.Len(t, a.Lifestyle, 1)
	assert.Len(t, a.Diet, 1)
	assert.Len(t, a.Medical, 1)
	assert.Len(t, a.Prevention, 1)
}

func TestHighTierAdviceEscalates(t *testing.T) {
	high := Recommendations(disease.Heart, TierHigh)
	assert.Contains(t, high.Medical[0], "URGENT")
}
