package physics

import (
	"fmt"
	"math"
	"strings"
)

// StarType is the spectral class of the host star.
type StarType string

const (
	StarO StarType = "O"
	StarB StarType = "B"
	StarA StarType = "A"
	StarF StarType = "F"
	StarG StarType = "G"
	StarK StarType = "K"
	StarM StarType = "M"
)

// StarInfo describes a spectral class for display.
type StarInfo struct {
	Type        StarType `json:"type"`
	Name        string   `json:"name"`
	Temperature string   `json:"temperature"`
	Color       string   `json:"color"`
}

var starCatalog = []StarInfo{
	{StarO, "Blue Supergiant", "30,000+ K", "#9BB0FF"},
	{StarB, "Blue Giant", "10,000-30,000 K", "#AABFFF"},
	{StarA, "Blue-White", "7,500-10,000 K", "#CAD7FF"},
	{StarF, "White", "6,000-7,500 K", "#F8F7FF"},
	{StarG, "Yellow (Sun-like)", "5,200-6,000 K", "#FFF4EA"},
	{StarK, "Orange", "3,700-5,200 K", "#FFD2A1"},
	{StarM, "Red Dwarf", "2,400-3,700 K", "#FFCC6F"},
}

// StarTypes returns the spectral classes from hottest to coolest.
func StarTypes() []StarInfo {
	out := make([]StarInfo, len(starCatalog))
	copy(out, starCatalog)
	return out
}

func ParseStarType(s string) (StarType, error) {
	t := StarType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown star type %q", s)
	}
	return t, nil
}

func (t StarType) Valid() bool {
	for _, info := range starCatalog {
		if info.Type == t {
			return true
		}
	}
	return false
}

// equilibriumConstant folds a fixed albedo and the Stefan-Boltzmann terms into one factor.
const equilibriumConstant = 278.0

// LuminosityTable maps spectral classes to luminosity relative to the Sun. It is immutable
// once built; unknown classes resolve to the fallback value.
type LuminosityTable struct {
	byType   map[StarType]float64
	fallback float64
}

// NewLuminosityTable copies values so later changes to the map do not leak into the table.
func NewLuminosityTable(values map[StarType]float64, fallback float64) LuminosityTable {
	byType := make(map[StarType]float64, len(values))
	for t, l := range values {
		byType[t] = l
	}
	return LuminosityTable{byType: byType, fallback: fallback}
}

// DefaultLuminosity is the table used when no other is configured. Unknown classes are
// treated as Sun-like.
var DefaultLuminosity = NewLuminosityTable(map[StarType]float64{
	StarO: 100000,
	StarB: 10000,
	StarA: 40,
	StarF: 6,
	StarG: 1,
	StarK: 0.4,
	StarM: 0.04,
}, 1)

func (t LuminosityTable) Luminosity(star StarType) float64 {
	if l, ok := t.byType[star]; ok {
		return l
	}
	if t.byType == nil && t.fallback == 0 {
		return DefaultLuminosity.Luminosity(star)
	}
	return t.fallback
}

// EquilibriumTemperature returns the surface temperature in Kelvin of a body at distanceAU
// from a star of the given class.
//
// Distance must be positive. A zero distance yields +Inf and a negative one is treated like
// its absolute value; callers are expected to validate before getting here.
func (t LuminosityTable) EquilibriumTemperature(star StarType, distanceAU float64) float64 {
	l := t.Luminosity(star)
	return equilibriumConstant * math.Pow(l/(distanceAU*distanceAU), 0.25)
}

// EquilibriumTemperature uses DefaultLuminosity.
func EquilibriumTemperature(star StarType, distanceAU float64) float64 {
	return DefaultLuminosity.EquilibriumTemperature(star, distanceAU)
}
