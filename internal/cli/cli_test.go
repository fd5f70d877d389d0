package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planet-builder/internal/classification"
	"planet-builder/internal/habitability"
	"planet-builder/internal/physics"
	"planet-builder/internal/planet"
	"planet-builder/internal/preset"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeAssessment(t *testing.T, out string) planet.Assessment {
	t.Helper()
	var a planet.Assessment
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	return a
}

func TestClassifyPresetJSON(t *testing.T) {
	out, err := execute(t, "classify", "--preset", "earth", "--json")
	require.NoError(t, err)

	a := decodeAssessment(t, out)
	assert.Equal(t, classification.TypeEarthLike, a.Classification.Type)
	assert.Equal(t, 89, a.Habitability.TotalScore)
	assert.Equal(t, habitability.RatingHighlyHabitable, a.Habitability.Rating)
}

func TestClassifyPresetOverrides(t *testing.T) {
	out, err := execute(t, "classify", "-p", "mars", "--distance", "1.2", "--json")
	require.NoError(t, err)

	mars, err := preset.ByID("mars")
	require.NoError(t, err)

	a := decodeAssessment(t, out)
	assert.Equal(t, 1.2, a.Configuration.DistanceAU)
	assert.Equal(t, mars.MassEarth, a.Configuration.MassEarth)
	assert.Equal(t, mars.RotationPeriodHours, a.Configuration.RotationPeriodHours)
	if diff := cmp.Diff(mars.Composition, a.Configuration.Composition); diff != "" {
		t.Errorf("composition mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyElements(t *testing.T) {
	out, err := execute(t, "classify",
		"-e", "Si=20", "-e", "fe=10", "-e", "O=25", "-e", "N=10",
		"-e", "C=5", "-e", "H=5", "-e", "P=2", "-e", "Mg=3", "--json")
	require.NoError(t, err)

	a := decodeAssessment(t, out)
	assert.Equal(t, physics.StarG, a.Configuration.StarType)
	assert.Equal(t, 10.0, a.Configuration.Composition.Parts(physics.Iron))
	assert.Equal(t, classification.TypeEarthLike, a.Classification.Type)
	assert.Equal(t, 89, a.Habitability.TotalScore)
}

func TestClassifyText(t *testing.T) {
	out, err := execute(t, "classify", "--preset", "earth")
	require.NoError(t, err)

	assert.Contains(t, out, "EARTH-LIKE")
	assert.Contains(t, out, "Habitability 89/100")
	assert.Contains(t, out, "Highly Habitable")
	assert.Contains(t, out, "✓")
}

func TestClassifyErrors(t *testing.T) {
	tests := map[string][]string{
		"unknown preset":    {"classify", "--preset", "death-star"},
		"unknown element":   {"classify", "-e", "Xx=5"},
		"malformed element": {"classify", "-e", "Si"},
		"bad parts":         {"classify", "-e", "Si=lots"},
		"negative parts":    {"classify", "-e", "Si=-4"},
		"unknown star":      {"classify", "--star", "Q"},
		"zero mass":         {"classify", "--mass", "0"},
		"extra argument":    {"classify", "earth"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestPresets(t *testing.T) {
	out, err := execute(t, "presets")
	require.NoError(t, err)
	for _, id := range []string{"earth", "water-world", "hot-jupiter", "desert-world"} {
		assert.Contains(t, out, id)
	}

	out, err = execute(t, "presets", "--json")
	require.NoError(t, err)
	var presets []preset.Preset
	require.NoError(t, json.Unmarshal([]byte(out), &presets))
	assert.Len(t, presets, 10)
}

func TestElements(t *testing.T) {
	out, err := execute(t, "elements")
	require.NoError(t, err)

	assert.Contains(t, out, "Elements")
	assert.Contains(t, out, "Silicon")
	assert.Contains(t, out, "Star types")
	assert.Equal(t, len(physics.Elements())+len(physics.StarTypes())+3, strings.Count(out, "\n"))
}

func TestParseElements(t *testing.T) {
	got, err := parseElements([]string{"Si=20", "si=5", " O = 1.5"})
	require.NoError(t, err)
	assert.Equal(t, physics.Composition{physics.Silicon: 25, physics.Oxygen: 1.5}, got)
}
