package physics

import "math"

const (
	// Cores of smaller bodies have solidified.
	minDynamoMass          = 0.5
	// Larger bodies keep a molten core whatever their rotation.
	moltenCoreMass         = 10.0
	// Slower rotation cannot drive a dynamo.
	maxDynamoRotationHours = 100.0
)

// MagneticField is the outcome of the dynamo model. Strength is 0-100 and zero when absent.
type MagneticField struct {
	Present  bool `json:"present"`
	Strength int  `json:"strength"`
}

// Magnetosphere decides whether a planet generates a magnetic field and how strong it is.
func Magnetosphere(massEarth, rotationPeriodHours float64) MagneticField {
	if !hasDynamo(massEarth, rotationPeriodHours) {
		return MagneticField{}
	}
	return MagneticField{
		Present:  true,
		Strength: FieldStrength(massEarth, rotationPeriodHours),
	}
}

func hasDynamo(massEarth, rotationPeriodHours float64) bool {
	switch {
	case massEarth < minDynamoMass:
		return false
	case massEarth > moltenCoreMass:
		return true
	case rotationPeriodHours > maxDynamoRotationHours:
		return false
	default:
		return true
	}
}

// FieldStrength evaluates the strength formula without checking whether a dynamo exists.
// Mass and rotation each contribute up to 50 points.
func FieldStrength(massEarth, rotationPeriodHours float64) int {
	massContribution := math.Min(massEarth/10*50, 50)
	rotationContribution := math.Max(0, 1-rotationPeriodHours/100) * 50
	strength := math.Round(massContribution + rotationContribution)
	return int(math.Max(0, math.Min(100, strength)))
}
