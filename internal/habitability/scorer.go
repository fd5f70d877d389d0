// Package habitability scores how suitable a classified planet is for life.
package habitability

import (
	"math"

	"planet-builder/internal/classification"
	"planet-builder/internal/physics"
)

// DefaultRotationHours is used when no rotation period is given.
const DefaultRotationHours = 24.0

const (
	suffixFastAtmosphere = " (severely compromised by extreme rotation)"
	suffixFastWater      = " (water stripped by extreme rotation)"
	suffixSlowAtmosphere = " (partially stripped by slow rotation)"
)

// Score computes the seven habitability factors, applies the rotation penalties and rates
// the average. A non-positive rotationHours means DefaultRotationHours.
//
// Rotation feeds the score twice. It has its own factor and it also scales down the
// atmosphere and water factors at the extremes.
func Score(c classification.Classification, comp physics.Composition, rotationHours float64) Breakdown {
	if rotationHours <= 0 {
		rotationHours = DefaultRotationHours
	}

	factors := Factors{
		Temperature:   scoreTemperature(c.TemperatureK),
		Atmosphere:    scoreAtmosphere(c),
		Water:         scoreWater(comp, c.TemperatureK),
		MagneticField: scoreMagneticField(c.HasMagneticField),
		Geology:       scoreGeology(c.GeologicalActivity),
		Chemistry:     scoreChemistry(comp),
		Rotation:      scoreRotation(rotationHours, c.TemperatureK),
	}
	applyRotationPenalties(&factors, rotationHours)

	sum := 0
	all := factors.all()
	for _, f := range all {
		sum += f.Score
	}
	total := int(math.Round(float64(sum) / float64(len(all))))

	return Breakdown{
		TotalScore: total,
		Factors:    factors,
		Rating:     RatingFor(total),
	}
}

func applyRotationPenalties(f *Factors, hours float64) {
	switch {
	case hours < 4:
		multiplier := 0.3
		if hours < 2 {
			multiplier = 0.1
		}
		f.Atmosphere = penalize(f.Atmosphere, multiplier, suffixFastAtmosphere)
		f.Water = penalize(f.Water, multiplier, suffixFastWater)
	case hours > 200:
		multiplier := 0.6
		if hours > 500 {
			multiplier = 0.4
		}
		f.Atmosphere = penalize(f.Atmosphere, multiplier, suffixSlowAtmosphere)
	}
}

func penalize(f Factor, multiplier float64, suffix string) Factor {
	return Factor{
		Score:  int(math.Round(float64(f.Score) * multiplier)),
		Reason: f.Reason + suffix,
	}
}

// RatingFor maps a total score to its rating bucket.
func RatingFor(score int) Rating {
	switch {
	case score >= ThresholdHighlyHabitable:
		return RatingHighlyHabitable
	case score >= ThresholdHabitable:
		return RatingHabitable
	case score >= ThresholdMarginal:
		return RatingMarginal
	case score >= ThresholdExtremelyHarsh:
		return RatingExtremelyHarsh
	default:
		return RatingUninhabitable
	}
}
