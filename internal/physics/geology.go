package physics

// GeologicalActivity buckets how much internal heat drives volcanism and tectonics.
type GeologicalActivity string

const (
	GeologyNone     GeologicalActivity = "none"
	GeologyLow      GeologicalActivity = "low"
	GeologyModerate GeologicalActivity = "moderate"
	GeologyHigh     GeologicalActivity = "high"
	GeologyExtreme  GeologicalActivity = "extreme"
)

func (g GeologicalActivity) String() string {
	return string(g)
}

// GeologyFor classifies activity from mass alone.
func GeologyFor(massEarth float64) GeologicalActivity {
	switch {
	case massEarth > 5:
		return GeologyExtreme
	case massEarth > 2:
		return GeologyHigh
	case massEarth > 0.8:
		return GeologyModerate
	case massEarth > 0.3:
		return GeologyLow
	default:
		return GeologyNone
	}
}
