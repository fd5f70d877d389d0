package planet

import (
	"math"
	"slices"
	"strings"

	"planet-builder/internal/physics"
	"planet-builder/internal/shared/errors"
)

const maxDesignNameLength = 100

// Validate rejects configurations the engine cannot meaningfully assess. An empty
// composition is allowed and classifies as a barren world.
func Validate(cfg Configuration) error {
	symbols := make([]string, 0, len(cfg.Composition))
	for e := range cfg.Composition {
		symbols = append(symbols, string(e))
	}
	slices.Sort(symbols)

	for _, symbol := range symbols {
		e := physics.Element(symbol)
		if !e.Valid() {
			return errors.Validationf("unknown element %q", symbol)
		}
		parts := cfg.Composition[e]
		if !finite(parts) || parts < 0 {
			return errors.Validationf("parts for %s must be a non-negative number, got %v", symbol, parts)
		}
	}
	if total := cfg.Composition.Total(); !finite(total) {
		return errors.Validationf("composition total must be finite, got %v", total)
	}

	if !cfg.StarType.Valid() {
		return errors.Validationf("unknown star type %q", cfg.StarType)
	}
	if err := positive("distance_au", cfg.DistanceAU); err != nil {
		return err
	}
	if t := physics.EquilibriumTemperature(cfg.StarType, cfg.DistanceAU); !finite(t) {
		return errors.Validationf("distance_au %v is too close to the star to assess", cfg.DistanceAU)
	}
	if err := positive("mass_earth", cfg.MassEarth); err != nil {
		return err
	}
	return positive("rotation_period_hours", cfg.RotationPeriodHours)
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.Validation("design name is required")
	}
	if len([]rune(name)) > maxDesignNameLength {
		return "", errors.Validationf("design name must be at most %d characters", maxDesignNameLength)
	}
	return name, nil
}

func positive(field string, v float64) error {
	if !finite(v) || v <= 0 {
		return errors.Validationf("%s must be a positive number, got %v", field, v)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
