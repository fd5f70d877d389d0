package classification

import (
	"slices"

	"planet-builder/internal/physics"
)

type PlanetType string

const (
	TypeGasGiant         PlanetType = "gas-giant"
	TypeIceGiant         PlanetType = "ice-giant"
	TypeLavaWorld        PlanetType = "lava-world"
	TypeVenusLike        PlanetType = "venus-like"
	TypeIceWorld         PlanetType = "ice-world"
	TypeWaterWorld       PlanetType = "water-world"
	TypeEarthLike        PlanetType = "earth-like"
	TypeRockyTerrestrial PlanetType = "rocky-terrestrial"
	TypeBarren           PlanetType = "barren"
)

func (t PlanetType) String() string {
	return string(t)
}

// Gas tags a constituent of an atmosphere. GasNone marks a planet with no meaningful envelope.
type Gas string

const (
	GasNone           Gas = "none"
	GasTrace          Gas = "trace"
	GasNitrogen       Gas = "nitrogen"
	GasOxygen         Gas = "oxygen"
	GasCarbonDioxide  Gas = "carbon-dioxide"
	GasHydrogen       Gas = "hydrogen"
	GasHelium         Gas = "helium"
	GasMethane        Gas = "methane"
	GasAmmonia        Gas = "ammonia"
	GasWaterVapor     Gas = "water-vapor"
	GasArgon          Gas = "argon"
	GasSulfurCompound Gas = "sulfur-compounds"
	GasRockVapor      Gas = "rock-vapor"
)

// Atmosphere pairs a human readable description with the gases it is made of.
type Atmosphere struct {
	Description string `json:"description"`
	Gases       []Gas  `json:"gases"`
}

// Has reports whether g is one of the atmosphere's gases.
func (a Atmosphere) Has(g Gas) bool {
	return slices.Contains(a.Gases, g)
}

// Present reports whether there is an atmosphere at all.
func (a Atmosphere) Present() bool {
	return len(a.Gases) > 0 && !a.Has(GasNone)
}

func noAtmosphere(description string) Atmosphere {
	return Atmosphere{Description: description, Gases: []Gas{GasNone}}
}

// Parameters are the user-chosen inputs of a planet.
type Parameters struct {
	Composition         physics.Composition `json:"composition"`
	DistanceAU          float64             `json:"distance_au"`
	StarType            physics.StarType    `json:"star_type"`
	MassEarth           float64             `json:"mass_earth"`
	RotationPeriodHours float64             `json:"rotation_period_hours"`
}

// Classification is the physical description derived from Parameters.
type Classification struct {
	Type                  PlanetType                 `json:"type"`
	TemperatureK          float64                    `json:"temperature_kelvin"`
	Atmosphere            Atmosphere                 `json:"atmosphere"`
	SurfaceDescription    string                     `json:"surface_description"`
	HasLife               bool                       `json:"has_life"`
	HasMagneticField      bool                       `json:"has_magnetic_field"`
	MagneticFieldStrength int                        `json:"magnetic_field_strength"`
	GeologicalActivity    physics.GeologicalActivity `json:"geological_activity"`
	DisplayColor          string                     `json:"display_color"`
}
