package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	cases := []struct {
		probability float64
		want        Tier
	}{
		{0.0, TierLow},
		{0.39, TierLow},
		{0.40, TierMedium},
		{0.69, TierMedium},
		{0.70, TierHigh},
		{1.0, TierHigh},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TierFor(tc.probability), "probability %v", tc.probability)
	}
}
