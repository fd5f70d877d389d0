package habitability

import (
	"fmt"
	"math"

	"planet-builder/internal/classification"
	"planet-builder/internal/physics"
)

func scoreTemperature(t float64) Factor {
	switch {
	case t >= 273 && t <= 310:
		return Factor{100, "Optimal temperature range for liquid water and life"}
	case t >= 250 && t <= 350:
		return Factor{70, "Challenging but potentially habitable temperature"}
	case t >= 200 && t <= 400:
		return Factor{40, "Extreme temperature - very difficult for life"}
	case t < 100:
		return Factor{10, "Frozen world - minimal potential for complex life"}
	case t > 500:
		return Factor{5, "Scorching temperatures - hostile to known life"}
	default:
		return Factor{20, "Temperature outside habitable range"}
	}
}

func scoreAtmosphere(c classification.Classification) Factor {
	atm := c.Atmosphere
	nitrogen := atm.Has(classification.GasNitrogen)

	switch {
	case !atm.Present():
		return Factor{10, "No atmosphere - exposed to radiation and temperature extremes"}
	case nitrogen && atm.Has(classification.GasOxygen):
		return Factor{100, "Nitrogen-oxygen atmosphere - breathable and protective"}
	case nitrogen:
		return Factor{70, "Nitrogen atmosphere provides protection but not breathable"}
	case atm.Has(classification.GasCarbonDioxide) && c.TemperatureK < 350:
		return Factor{50, "CO₂ atmosphere with moderate greenhouse effect"}
	case atm.Has(classification.GasCarbonDioxide):
		return Factor{35, "Dense CO₂ atmosphere with extreme greenhouse effect"}
	case atm.Has(classification.GasHydrogen):
		return Factor{30, "Hydrogen-rich atmosphere typical of gas giants"}
	default:
		return Factor{40, "Atmosphere present but composition not ideal for life"}
	}
}

// WaterPotential is min(H%, 2*O%) divided by the raw total of parts. The divisor is the
// part count, not 100, so the same proportions score differently at different totals.
func WaterPotential(comp physics.Composition) float64 {
	total := comp.Total()
	if total == 0 {
		return 0
	}
	h := comp.Percent(physics.Hydrogen)
	o := comp.Percent(physics.Oxygen)
	return math.Min(h, 2*o) / total
}

func scoreWater(comp physics.Composition, t float64) Factor {
	potential := WaterPotential(comp)

	switch {
	case potential > 0.15 && t >= 273 && t <= 373:
		return Factor{100, "Abundant liquid water at surface temperature"}
	case potential > 0.1 && t < 273:
		return Factor{60, "Water present but mostly frozen"}
	case potential > 0.1 && t > 373:
		return Factor{50, "Water present but likely as steam"}
	case potential > 0.1:
		return Factor{90, "Good water content with liquid potential"}
	case potential > 0.05:
		return Factor{50, "Limited water content"}
	default:
		return Factor{20, "Very dry - minimal water"}
	}
}

func scoreMagneticField(present bool) Factor {
	if present {
		return Factor{100, "Magnetic field provides radiation protection"}
	}
	return Factor{30, "No magnetic field - vulnerable to solar radiation"}
}

func scoreGeology(activity physics.GeologicalActivity) Factor {
	switch activity {
	case physics.GeologyHigh, physics.GeologyModerate:
		return Factor{90, "Active geology recycles nutrients and drives carbon cycle"}
	case physics.GeologyLow:
		return Factor{60, "Some geological activity provides slow nutrient cycling"}
	case physics.GeologyExtreme:
		return Factor{40, "Extreme volcanic activity may be hazardous"}
	default:
		return Factor{30, "Geologically dead - no nutrient recycling"}
	}
}

var (
	chnops = []physics.Element{physics.Carbon, physics.Hydrogen, physics.Nitrogen, physics.Oxygen, physics.Phosphorus, physics.Sulfur}
	chno   = chnops[:4]
	ch     = chnops[:2]
)

func scoreChemistry(comp physics.Composition) Factor {
	switch {
	case comp.HasAll(chnops...):
		return Factor{100, "All CHNOPS elements present - building blocks of life"}
	case comp.HasAll(chno...):
		return Factor{80, "Core organic elements (CHNO) present"}
	case comp.HasAll(ch...):
		return Factor{50, "Carbon and hydrogen present - organic chemistry possible"}
	default:
		return Factor{20, "Limited organic chemistry potential"}
	}
}

func scoreRotation(hours, t float64) Factor {
	switch {
	case hours < 2:
		return Factor{0, "Catastrophic rotation - centrifugal forces would destroy surface structures and prevent atmosphere retention"}
	case hours < 4:
		return Factor{5, "Extreme rotation (< 4 hrs) - winds exceeding 1000 mph, constant category 5 hurricanes, uninhabitable surface"}
	case hours < 8:
		return Factor{25, "Very fast rotation - perpetual hurricane-force winds, extreme Coriolis effects, hazardous for complex life"}
	case hours < 16:
		return Factor{60, "Fast rotation - strong global wind patterns and weather systems, but manageable"}
	case hours <= 40:
		return Factor{100, "Optimal rotation period - balanced day/night cycle, moderate weather, and good heat distribution"}
	case hours <= 100:
		return Factor{65, "Slow rotation - significant day/night temperature variations, but life can adapt"}
	case hours <= 500:
		swing := "severe"
		if t > 273 {
			swing = "extreme"
		}
		return Factor{30, fmt.Sprintf("Very slow rotation - %s temperature swings between eternal day and night sides", swing)}
	default:
		return Factor{10, "Near tidally locked - one hemisphere perpetually scorched, other frozen, narrow habitable twilight zone only"}
	}
}
