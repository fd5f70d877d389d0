package physics

// volatiles are the elements that can form a gaseous envelope.
var volatiles = []Element{Nitrogen, Oxygen, Carbon, Hydrogen, Helium}

const (
	minVolatilePercent = 5.0

	// Below this mass nothing is held.
	minAtmosphereMass = 0.1
	// Below this mass only heavy molecules stay, and only while the planet is cool.
	lightBodyMass     = 0.5
	lightBodyMaxTempK = 700.0
	heavyBodyMaxTempK = 1500.0
)

// RetainsAtmosphere reports whether a planet of the given mass, temperature and composition
// can keep a gaseous envelope.
func RetainsAtmosphere(massEarth, temperatureK float64, c Composition) bool {
	if c.Total() == 0 {
		return false
	}
	if c.PercentSum(volatiles...) < minVolatilePercent {
		return false
	}
	if massEarth < minAtmosphereMass {
		return false
	}
	if massEarth < lightBodyMass {
		return temperatureK <= lightBodyMaxTempK
	}
	return temperatureK <= heavyBodyMaxTempK
}
