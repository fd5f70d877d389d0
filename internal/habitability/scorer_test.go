package habitability

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planet-builder/internal/classification"
	"planet-builder/internal/physics"
)

var earthComposition = physics.Composition{
	physics.Silicon:    20,
	physics.Iron:       10,
	physics.Oxygen:     25,
	physics.Nitrogen:   10,
	physics.Carbon:     5,
	physics.Hydrogen:   5,
	physics.Phosphorus: 2,
	physics.Magnesium:  3,
}

func earth(t *testing.T) classification.Classification {
	t.Helper()
	c := classification.Classify(classification.Parameters{
		Composition:         earthComposition,
		DistanceAU:          1,
		StarType:            physics.StarG,
		MassEarth:           1,
		RotationPeriodHours: 24,
	})
	require.Equal(t, classification.TypeEarthLike, c.Type)
	return c
}

func TestScoreEarth(t *testing.T) {
	b := Score(earth(t), earthComposition, 24)

	assert.Equal(t, 100, b.Factors.Temperature.Score)
	assert.Equal(t, 100, b.Factors.Atmosphere.Score)
	assert.Equal(t, 50, b.Factors.Water.Score)
	assert.Equal(t, 100, b.Factors.MagneticField.Score)
	assert.Equal(t, 90, b.Factors.Geology.Score)
	assert.Equal(t, 80, b.Factors.Chemistry.Score)
	assert.Equal(t, 100, b.Factors.Rotation.Score)
	assert.Equal(t, 89, b.TotalScore)
	assert.Equal(t, RatingHighlyHabitable, b.Rating)
}

func TestScoreDefaultsRotation(t *testing.T) {
	c := earth(t)
	want := Score(c, earthComposition, DefaultRotationHours)

	for _, hours := range []float64{0, -5} {
		if diff := cmp.Diff(want, Score(c, earthComposition, hours)); diff != "" {
			t.Errorf("Score(rotation=%v) mismatch (-want +got):\n%s", hours, diff)
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	c := earth(t)
	if diff := cmp.Diff(Score(c, earthComposition, 30), Score(c, earthComposition, 30)); diff != "" {
		t.Errorf("Score() mismatch (-first +second):\n%s", diff)
	}
}

func TestRotationTiersAndPenalties(t *testing.T) {
	tests := []struct {
		hours      float64
		rotation   int
		atmosphere int
		water      int
	}{
		{1.9, 0, 10, 5},
		{2, 5, 30, 15},
		{3.9, 5, 30, 15},
		{4, 25, 100, 50},
		{7.9, 25, 100, 50},
		{8, 60, 100, 50},
		{15.9, 60, 100, 50},
		{16, 100, 100, 50},
		{40, 100, 100, 50},
		{40.1, 65, 100, 50},
		{100, 65, 100, 50},
		{100.1, 30, 100, 50},
		{200, 30, 100, 50},
		{201, 30, 60, 50},
		{500, 30, 60, 50},
		{501, 10, 40, 50},
	}

	c := earth(t)
	for _, tt := range tests {
		b := Score(c, earthComposition, tt.hours)
		assert.Equal(t, tt.rotation, b.Factors.Rotation.Score, "rotation factor at %v h", tt.hours)
		assert.Equal(t, tt.atmosphere, b.Factors.Atmosphere.Score, "atmosphere factor at %v h", tt.hours)
		assert.Equal(t, tt.water, b.Factors.Water.Score, "water factor at %v h", tt.hours)
	}
}

func TestRotationPenaltyReasons(t *testing.T) {
	c := earth(t)

	fast := Score(c, earthComposition, 3)
	assert.True(t, strings.HasSuffix(fast.Factors.Atmosphere.Reason, suffixFastAtmosphere))
	assert.True(t, strings.HasSuffix(fast.Factors.Water.Reason, suffixFastWater))

	slow := Score(c, earthComposition, 300)
	assert.True(t, strings.HasSuffix(slow.Factors.Atmosphere.Reason, suffixSlowAtmosphere))
	assert.NotContains(t, slow.Factors.Water.Reason, "rotation")

	normal := Score(c, earthComposition, 24)
	assert.NotContains(t, normal.Factors.Atmosphere.Reason, "rotation")
}

func TestSlowRotationReasonDependsOnTemperature(t *testing.T) {
	assert.Contains(t, scoreRotation(300, 280).Reason, "extreme temperature swings")
	assert.Contains(t, scoreRotation(300, 273).Reason, "severe temperature swings")
}

func TestScoreTemperature(t *testing.T) {
	tests := map[float64]int{
		273:   100,
		310:   100,
		310.5: 70,
		250:   70,
		350:   70,
		200:   40,
		400:   40,
		99:    10,
		100:   20,
		450:   20,
		500:   20,
		501:   5,
	}
	for temp, want := range tests {
		assert.Equal(t, want, scoreTemperature(temp).Score, "temperature %v K", temp)
	}
}

func TestScoreAtmosphere(t *testing.T) {
	atm := func(gases ...classification.Gas) classification.Atmosphere {
		return classification.Atmosphere{Gases: gases}
	}
	tests := []struct {
		name string
		atm  classification.Atmosphere
		temp float64
		want int
	}{
		{"absent", atm(classification.GasNone), 288, 10},
		{"unset", classification.Atmosphere{}, 288, 10},
		{"nitrogen and oxygen", atm(classification.GasNitrogen, classification.GasOxygen, classification.GasArgon), 288, 100},
		{"nitrogen with carbon dioxide", atm(classification.GasCarbonDioxide, classification.GasNitrogen), 288, 70},
		{"temperate carbon dioxide", atm(classification.GasCarbonDioxide, classification.GasSulfurCompound), 349, 50},
		{"hot carbon dioxide", atm(classification.GasCarbonDioxide, classification.GasSulfurCompound), 350, 35},
		{"hydrogen", atm(classification.GasHydrogen, classification.GasHelium), 100, 30},
		{"rock vapor", atm(classification.GasRockVapor), 1200, 40},
		{"trace", atm(classification.GasTrace), 288, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := classification.Classification{Atmosphere: tt.atm, TemperatureK: tt.temp}
			assert.Equal(t, tt.want, scoreAtmosphere(c).Score)
		})
	}
}

func TestWaterPotential(t *testing.T) {
	assert.Zero(t, WaterPotential(nil))
	assert.InDelta(t, 25.0, WaterPotential(physics.Composition{physics.Hydrogen: 1, physics.Oxygen: 1}), 1e-9)
	// Same proportions, a hundred times the parts.
	assert.InDelta(t, 0.25, WaterPotential(physics.Composition{physics.Hydrogen: 100, physics.Oxygen: 100}), 1e-9)
	// Oxygen caps the hydrogen that can bind.
	assert.InDelta(t, 2.0, WaterPotential(physics.Composition{physics.Hydrogen: 9, physics.Oxygen: 1, physics.Iron: 0}), 1e-9)
}

func TestScoreWater(t *testing.T) {
	rich := physics.Composition{physics.Hydrogen: 10, physics.Oxygen: 10}
	good := physics.Composition{physics.Hydrogen: 200, physics.Oxygen: 200}
	limited := physics.Composition{physics.Hydrogen: 400, physics.Oxygen: 400}
	dry := physics.Composition{physics.Hydrogen: 1000, physics.Oxygen: 1000}

	tests := []struct {
		name string
		comp physics.Composition
		temp float64
		want int
	}{
		{"liquid", rich, 300, 100},
		{"liquid at freezing point", rich, 273, 100},
		{"frozen", rich, 250, 60},
		{"steam", rich, 400, 50},
		{"good content", good, 300, 90},
		{"good content frozen", good, 200, 60},
		{"limited", limited, 300, 50},
		{"dry", dry, 300, 20},
		{"empty", physics.Composition{}, 300, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreWater(tt.comp, tt.temp).Score)
		})
	}
}

func TestScoreChemistry(t *testing.T) {
	chnopsComp := physics.Composition{
		physics.Carbon: 1, physics.Hydrogen: 1, physics.Nitrogen: 1,
		physics.Oxygen: 1, physics.Phosphorus: 1, physics.Sulfur: 1,
	}
	assert.Equal(t, 100, scoreChemistry(chnopsComp).Score)

	noSulfur := chnopsComp.Clone()
	noSulfur[physics.Sulfur] = 0
	assert.Equal(t, 80, scoreChemistry(noSulfur).Score)

	assert.Equal(t, 50, scoreChemistry(physics.Composition{physics.Carbon: 3, physics.Hydrogen: 1}).Score)
	assert.Equal(t, 20, scoreChemistry(physics.Composition{physics.Silicon: 10}).Score)
}

func TestScoreGeologyAndField(t *testing.T) {
	assert.Equal(t, 90, scoreGeology(physics.GeologyHigh).Score)
	assert.Equal(t, 90, scoreGeology(physics.GeologyModerate).Score)
	assert.Equal(t, 60, scoreGeology(physics.GeologyLow).Score)
	assert.Equal(t, 40, scoreGeology(physics.GeologyExtreme).Score)
	assert.Equal(t, 30, scoreGeology(physics.GeologyNone).Score)

	assert.Equal(t, 100, scoreMagneticField(true).Score)
	assert.Equal(t, 30, scoreMagneticField(false).Score)
}

func TestRatingFor(t *testing.T) {
	tests := map[int]Rating{
		100: RatingHighlyHabitable,
		80:  RatingHighlyHabitable,
		79:  RatingHabitable,
		60:  RatingHabitable,
		59:  RatingMarginal,
		40:  RatingMarginal,
		39:  RatingExtremelyHarsh,
		20:  RatingExtremelyHarsh,
		19:  RatingUninhabitable,
		0:   RatingUninhabitable,
	}
	for score, want := range tests {
		assert.Equal(t, want, RatingFor(score), "score %d", score)
	}
}

func TestTotalScoreBounds(t *testing.T) {
	planets := []classification.Parameters{
		{Composition: earthComposition, DistanceAU: 1, StarType: physics.StarG, MassEarth: 1},
		{DistanceAU: 1, StarType: physics.StarG, MassEarth: 1},
		{Composition: physics.Composition{physics.Hydrogen: 90, physics.Helium: 10}, DistanceAU: 0.01, StarType: physics.StarO, MassEarth: 300},
		{Composition: physics.Composition{physics.Argon: 5}, DistanceAU: 40, StarType: physics.StarM, MassEarth: 0.05},
	}
	rotations := []float64{0.5, 1.9, 3, 6, 12, 24, 60, 150, 300, 1000}

	for _, p := range planets {
		for _, hours := range rotations {
			p.RotationPeriodHours = hours
			b := Score(classification.Classify(p), p.Composition, hours)
			assert.GreaterOrEqual(t, b.TotalScore, 0)
			assert.LessOrEqual(t, b.TotalScore, 100)
			assert.Equal(t, RatingFor(b.TotalScore), b.Rating)
		}
	}
}
