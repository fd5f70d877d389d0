package habitability

type Rating string

const (
	RatingUninhabitable   Rating = "Uninhabitable"
	RatingExtremelyHarsh  Rating = "Extremely Harsh"
	RatingMarginal        Rating = "Marginal"
	RatingHabitable       Rating = "Habitable"
	RatingHighlyHabitable Rating = "Highly Habitable"
)

// Rating thresholds on the total score, checked from the top.
const (
	ThresholdHighlyHabitable = 80
	ThresholdHabitable       = 60
	ThresholdMarginal        = 40
	ThresholdExtremelyHarsh  = 20
)

// Factor is one scored aspect of habitability. Score is 0-100.
type Factor struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

type Factors struct {
	Temperature   Factor `json:"temperature"`
	Atmosphere    Factor `json:"atmosphere"`
	Water         Factor `json:"water"`
	MagneticField Factor `json:"magnetic_field"`
	Geology       Factor `json:"geology"`
	Chemistry     Factor `json:"chemistry"`
	Rotation      Factor `json:"rotation"`
}

func (f Factors) all() []Factor {
	return []Factor{f.Temperature, f.Atmosphere, f.Water, f.MagneticField, f.Geology, f.Chemistry, f.Rotation}
}

// Breakdown is the full habitability assessment of a classified planet.
type Breakdown struct {
	TotalScore int     `json:"total_score"`
	Factors    Factors `json:"factors"`
	Rating     Rating  `json:"rating"`
}
