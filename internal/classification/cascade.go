package classification

import (
	"planet-builder/internal/physics"
)

// observations are the measurements every rule of the cascade can look at. They are
// derived once per classification.
type observations struct {
	params Parameters
	total  float64

	h, he, o, c, si, fe, mg, n, p float64

	temperatureK float64
	atmosphere   bool
	field        physics.MagneticField
	geology      physics.GeologicalActivity
}

func observe(p Parameters, luminosity physics.LuminosityTable) *observations {
	comp := p.Composition
	obs := &observations{
		params:       p,
		total:        comp.Total(),
		temperatureK: luminosity.EquilibriumTemperature(p.StarType, p.DistanceAU),
	}
	if obs.total == 0 {
		return obs
	}

	obs.h = comp.Percent(physics.Hydrogen)
	obs.he = comp.Percent(physics.Helium)
	obs.o = comp.Percent(physics.Oxygen)
	obs.c = comp.Percent(physics.Carbon)
	obs.si = comp.Percent(physics.Silicon)
	obs.fe = comp.Percent(physics.Iron)
	obs.mg = comp.Percent(physics.Magnesium)
	obs.n = comp.Percent(physics.Nitrogen)
	obs.p = comp.Percent(physics.Phosphorus)

	obs.atmosphere = physics.RetainsAtmosphere(p.MassEarth, obs.temperatureK, comp)
	obs.field = physics.Magnetosphere(p.MassEarth, p.RotationPeriodHours)
	obs.geology = physics.GeologyFor(p.MassEarth)
	return obs
}

// base fills the fields shared by every branch: measured temperature, the dynamo model's
// field and the mass-based geology.
func (o *observations) base(t PlanetType) Classification {
	return Classification{
		Type:                  t,
		TemperatureK:          o.temperatureK,
		HasMagneticField:      o.field.Present,
		MagneticFieldStrength: o.field.Strength,
		GeologicalActivity:    o.geology,
	}
}

// forcedField is used by branches whose bodies always generate a field.
func (o *observations) forcedField(c *Classification) {
	c.HasMagneticField = true
	c.MagneticFieldStrength = physics.FieldStrength(o.params.MassEarth, o.params.RotationPeriodHours)
}

func (o *observations) retained(present Atmosphere, absent string) Atmosphere {
	if o.atmosphere {
		return present
	}
	return noAtmosphere(absent)
}

type rule struct {
	name     string
	matches  func(o *observations) bool
	build    func(o *observations) Classification
	criteria func(o *observations) []Criterion
}

// cascade is evaluated top to bottom and the first matching rule wins. Several rules can
// match the same planet, so the order decides the outcome.
var cascade = []rule{
	{
		name:    "empty",
		matches: func(o *observations) bool { return o.total == 0 },
		build: func(o *observations) Classification {
			return Classification{
				Type:               TypeBarren,
				TemperatureK:       o.temperatureK,
				Atmosphere:         noAtmosphere("None"),
				SurfaceDescription: "Empty void - no elements added",
				GeologicalActivity: physics.GeologyNone,
				DisplayColor:       "#2a2a2a",
			}
		},
		criteria: func(o *observations) []Criterion {
			return []Criterion{criterion(o.total == 0, "no elements added")}
		},
	},
	{
		name: string(TypeGasGiant),
		matches: func(o *observations) bool {
			return o.h+o.he > 60 && o.params.MassEarth > 10
		},
		build: func(o *observations) Classification {
			c := o.base(TypeGasGiant)
			c.Atmosphere = Atmosphere{
				Description: "Hydrogen and helium dominated with trace methane and ammonia",
				Gases:       []Gas{GasHydrogen, GasHelium, GasMethane, GasAmmonia},
			}
			c.SurfaceDescription = "No solid surface - thick gaseous envelope with possible rocky core deep within"
			o.forcedField(&c)
			c.GeologicalActivity = physics.GeologyExtreme
			c.DisplayColor = "#d4a574"
			return c
		},
		criteria: func(o *observations) []Criterion {
			return []Criterion{
				criterion(o.h+o.he > 60, "hydrogen + helium %.1f%% (more than 60%% required)", o.h+o.he),
				criterion(o.params.MassEarth > 10, "mass %.1fx Earth (more than 10x required)", o.params.MassEarth),
			}
		},
	},
	{
		name: string(TypeIceGiant),
		matches: func(o *observations) bool {
			return o.params.MassEarth > 5 && o.params.MassEarth < 20 && o.o+o.c+o.n > 30
		},
		build: func(o *observations) Classification {
			c := o.base(TypeIceGiant)
			c.Atmosphere = Atmosphere{
				Description: "Hydrogen and helium with water, methane, and ammonia ices",
				Gases:       []Gas{GasHydrogen, GasHelium, GasWaterVapor, GasMethane, GasAmmonia},
			}
			c.SurfaceDescription = "Icy mantle surrounding rocky core, with hydrogen-helium atmosphere"
			o.forcedField(&c)
			c.GeologicalActivity = physics.GeologyModerate
			c.DisplayColor = "#4a90e2"
			return c
		},
		criteria: func(o *observations) []Criterion {
			m := o.params.MassEarth
			return []Criterion{
				criterion(m > 5 && m < 20, "mass %.1fx Earth (between 5x and 20x required)", m),
				criterion(o.o+o.c+o.n > 30, "oxygen + carbon + nitrogen %.1f%% (more than 30%% required)", o.o+o.c+o.n),
			}
		},
	},
	{
		name: string(TypeLavaWorld),
		matches: func(o *observations) bool {
			return o.params.DistanceAU < 0.5 || o.temperatureK > 1000
		},
		build: func(o *observations) Classification {
			c := o.base(TypeLavaWorld)
			c.Atmosphere = o.retained(Atmosphere{
				Description: "Vaporized rock and metals",
				Gases:       []Gas{GasRockVapor},
			}, "Minimal - too hot to retain")
			c.SurfaceDescription = "Molten surface with lava flows, volcanic activity everywhere"
			c.GeologicalActivity = physics.GeologyExtreme
			c.DisplayColor = "#ff4500"
			return c
		},
		criteria: func(o *observations) []Criterion {
			return []Criterion{
				criterion(o.params.DistanceAU < 0.5, "distance %.2f AU (closer than 0.5 AU)", o.params.DistanceAU),
				criterion(o.temperatureK > 1000, "temperature %.0f K (hotter than 1000 K; either condition suffices)", o.temperatureK),
			}
		},
	},
	{
		name: string(TypeVenusLike),
		matches: func(o *observations) bool {
			return o.temperatureK > 500 && o.temperatureK < 800 && o.c > 10 && o.o > 15 && o.atmosphere
		},
		build: func(o *observations) Classification {
			c := o.base(TypeVenusLike)
			c.Atmosphere = Atmosphere{
				Description: "Dense CO₂ atmosphere with sulfuric acid clouds, extreme greenhouse effect",
				Gases:       []Gas{GasCarbonDioxide, GasSulfurCompound},
			}
			c.SurfaceDescription = "Rocky surface with volcanic plains, extreme pressure and heat"
			c.DisplayColor = "#e8b870"
			return c
		},
		criteria: func(o *observations) []Criterion {
			return []Criterion{
				criterion(o.temperatureK > 500 && o.temperatureK < 800, "temperature %.0f K (500-800 K required)", o.temperatureK),
				criterion(o.c > 10, "carbon %.1f%% (more than 10%% required)", o.c),
				criterion(o.o > 15, "oxygen %.1f%% (more than 15%% required)", o.o),
				criterion(o.atmosphere, "atmosphere retained"),
			}
		},
	},
	{
		name: string(TypeIceWorld),
		matches: func(o *observations) bool {
			return (o.params.DistanceAU > 3 || o.temperatureK < 200) && o.o > 20
		},
		build: func(o *observations) Classification {
			c := o.base(TypeIceWorld)
			c.Atmosphere = o.retained(Atmosphere{
				Description: "Thin nitrogen and methane atmosphere",
				Gases:       []Gas{GasNitrogen, GasMethane},
			}, "Minimal or none")
			c.SurfaceDescription = "Frozen surface covered in water ice, possible subsurface ocean if tidal heating present"
			c.GeologicalActivity = physics.GeologyNone
			if o.params.MassEarth > 0.5 {
				c.GeologicalActivity = physics.GeologyLow
			}
			c.DisplayColor = "#b0e0ff"
			return c
		},
		criteria: func(o *observations) []Criterion {
			return []Criterion{
				criterion(o.params.DistanceAU > 3 || o.temperatureK < 200,
					"distance %.2f AU and temperature %.0f K (beyond 3 AU or colder than 200 K)", o.params.DistanceAU, o.temperatureK),
				criterion(o.o > 20, "oxygen %.1f%% (more than 20%% required)", o.o),
			}
		},
	},
	{
		name: string(TypeWaterWorld),
		matches: func(o *observations) bool {
			m := o.params.MassEarth
			return o.temperatureK > 250 && o.temperatureK < 350 &&
				o.o > 25 && (o.h > 10 || o.o+o.h > 40) &&
				m > 0.5 && m < 3
		},
		build: func(o *observations) Classification {
			c := o.base(TypeWaterWorld)
			c.Atmosphere = Atmosphere{
				Description: "Nitrogen and oxygen with water vapor, mild greenhouse effect",
				Gases:       []Gas{GasNitrogen, GasOxygen, GasWaterVapor},
			}
			c.SurfaceDescription = "Vast oceans covering most of the surface, scattered islands or archipelagos"
			c.HasLife = true
			c.DisplayColor = "#0077be"
			return c
		},
		criteria: func(o *observations) []Criterion {
			m := o.params.MassEarth
			return []Criterion{
				criterion(o.temperatureK > 250 && o.temperatureK < 350, "temperature %.0f K (250-350 K required)", o.temperatureK),
				criterion(o.o > 25, "oxygen %.1f%% (more than 25%% required)", o.o),
				criterion(o.h > 10 || o.o+o.h > 40, "hydrogen %.1f%% (more than 10%%, or oxygen + hydrogen above 40%%)", o.h),
				criterion(m > 0.5 && m < 3, "mass %.1fx Earth (0.5x-3x required)", m),
			}
		},
	},
	{
		name: string(TypeEarthLike),
		matches: func(o *observations) bool {
			m := o.params.MassEarth
			return o.temperatureK > 250 && o.temperatureK < 350 &&
				m > 0.7 && m < 2 &&
				o.si > 10 && o.fe > 5 && o.o > 20 && o.n > 5 && o.c > 2 &&
				o.atmosphere && o.field.Present
		},
		build: func(o *observations) Classification {
			c := o.base(TypeEarthLike)
			c.Atmosphere = Atmosphere{
				Description: "Nitrogen-oxygen atmosphere with trace CO₂, water vapor, and argon",
				Gases:       []Gas{GasNitrogen, GasOxygen, GasCarbonDioxide, GasWaterVapor, GasArgon},
			}
			c.SurfaceDescription = "Rocky surface with continents, oceans, and active plate tectonics. Diverse biomes if life present."
			c.HasLife = o.p > 0.5
			o.forcedField(&c)
			c.GeologicalActivity = physics.GeologyModerate
			c.DisplayColor = "#2e8b57"
			return c
		},
		criteria: func(o *observations) []Criterion {
			m := o.params.MassEarth
			return []Criterion{
				criterion(o.temperatureK > 250 && o.temperatureK < 350, "temperature %.0f K (250-350 K required)", o.temperatureK),
				criterion(m > 0.7 && m < 2, "mass %.1fx Earth (0.7x-2x required)", m),
				criterion(o.si > 10, "silicon %.1f%% (more than 10%% required)", o.si),
				criterion(o.fe > 5, "iron %.1f%% (more than 5%% required)", o.fe),
				criterion(o.o > 20, "oxygen %.1f%% (more than 20%% required)", o.o),
				criterion(o.n > 5, "nitrogen %.1f%% (more than 5%% required)", o.n),
				criterion(o.c > 2, "carbon %.1f%% (more than 2%% required)", o.c),
				criterion(o.atmosphere, "atmosphere retained"),
				criterion(o.field.Present, "magnetic field present"),
			}
		},
	},
	{
		name: string(TypeRockyTerrestrial),
		matches: func(o *observations) bool {
			return o.si+o.fe+o.mg > 30
		},
		build: func(o *observations) Classification {
			c := o.base(TypeRockyTerrestrial)
			c.Atmosphere = o.retained(Atmosphere{
				Description: "Thin CO₂ and nitrogen atmosphere",
				Gases:       []Gas{GasCarbonDioxide, GasNitrogen},
			}, "Minimal or none")
			c.SurfaceDescription = "Rocky surface with impact craters, possible volcanic features"
			c.DisplayColor = "#8b7355"
			return c
		},
		criteria: func(o *observations) []Criterion {
			return []Criterion{
				criterion(o.si+o.fe+o.mg > 30, "silicon + iron + magnesium %.1f%% (more than 30%% required)", o.si+o.fe+o.mg),
			}
		},
	},
	{
		name:    "default",
		matches: func(o *observations) bool { return true },
		build: func(o *observations) Classification {
			c := o.base(TypeBarren)
			c.Atmosphere = o.retained(Atmosphere{
				Description: "Trace gases",
				Gases:       []Gas{GasTrace},
			}, "None")
			c.SurfaceDescription = "Barren rocky surface with unusual elemental composition"
			c.DisplayColor = "#5a5a5a"
			return c
		},
		criteria: func(o *observations) []Criterion {
			return []Criterion{
				criterion(true, "composition does not match any other planet type"),
			}
		},
	},
}

// RuleOrder lists the cascade's rules in evaluation order. Both "empty" and "default"
// produce barren planets.
func RuleOrder() []string {
	names := make([]string, len(cascade))
	for i, r := range cascade {
		names[i] = r.name
	}
	return names
}
