package risk

// Tier is the discretized risk band a probability falls into.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Fixed band edges; not configurable.
const (
	highThreshold   = 0.7
	mediumThreshold = 0.4
)

// TierFor buckets a probability into a tier. Every probability in [0,1]
// maps to exactly one tier; band upper edges are inclusive of the next
// band (0.4 is medium, 0.7 is high).
func TierFor(probability float64) Tier {
	switch {
	case probability >= highThreshold:
		return TierHigh
	case probability >= mediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}
