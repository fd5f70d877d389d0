package classification

import "fmt"

// Criterion is one condition checked by a rule, rendered with the measured value.
type Criterion struct {
	Description string `json:"description"`
	Met         bool   `json:"met"`
}

func criterion(met bool, format string, args ...any) Criterion {
	return Criterion{Description: fmt.Sprintf(format, args...), Met: met}
}

// Explanation tells why a planet ended up with its type.
type Explanation struct {
	Type     PlanetType  `json:"type"`
	Rule     string      `json:"rule"`
	Summary  string      `json:"summary"`
	Criteria []Criterion `json:"criteria"`
	// Rejected holds the rules evaluated before the matching one, in order.
	Rejected []string `json:"rejected"`
}

var summaries = map[string]string{
	"empty":                      "No elements were added, so there is nothing to form a planet from.",
	string(TypeGasGiant):         "Enough hydrogen and helium on a massive core to capture a thick gaseous envelope.",
	string(TypeIceGiant):         "A mid-sized body rich in water, carbon and nitrogen ices.",
	string(TypeLavaWorld):        "The planet sits so close to its star that its rocky surface melts.",
	string(TypeVenusLike):        "A hot carbon dioxide envelope drives a runaway greenhouse effect.",
	string(TypeIceWorld):         "Far from its star or very cold, so its water freezes solid.",
	string(TypeWaterWorld):       "Abundant oxygen and hydrogen in the habitable temperature band form global oceans.",
	string(TypeEarthLike):        "A balanced rocky composition in the habitable zone with an atmosphere and a magnetic field.",
	string(TypeRockyTerrestrial): "Dominated by silicate rock and metals.",
	"default":                    "The composition does not fit any standard planet type.",
}

// Explain classifies p and reports which rule matched and why.
func (c *Classifier) Explain(p Parameters) Explanation {
	result, idx, obs := c.evaluate(p)
	return explain(result, idx, obs)
}

func explain(result Classification, idx int, obs *observations) Explanation {
	matched := cascade[idx]
	rejected := make([]string, 0, idx)
	for _, r := range cascade[:idx] {
		rejected = append(rejected, r.name)
	}

	return Explanation{
		Type:     result.Type,
		Rule:     matched.name,
		Summary:  summaries[matched.name],
		Criteria: matched.criteria(obs),
		Rejected: rejected,
	}
}

// Explain uses the default luminosity table.
func Explain(p Parameters) Explanation {
	return defaultClassifier.Explain(p)
}
