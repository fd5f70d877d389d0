// Package preset ships the ready-made planet configurations.
package preset

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"planet-builder/internal/classification"
	"planet-builder/internal/physics"
)

//go:embed presets.yaml
var presetsYAML []byte

var ErrNotFound = errors.New("preset not found")

type Preset struct {
	ID                  string              `yaml:"id" json:"id"`
	Name                string              `yaml:"name" json:"name"`
	Description         string              `yaml:"description" json:"description"`
	Composition         physics.Composition `yaml:"composition" json:"composition"`
	MassEarth           float64             `yaml:"mass_earth" json:"mass_earth"`
	DistanceAU          float64             `yaml:"distance_au" json:"distance_au"`
	StarType            physics.StarType    `yaml:"star_type" json:"star_type"`
	RotationPeriodHours float64             `yaml:"rotation_period_hours" json:"rotation_period_hours"`
}

// Parameters returns the classification input of the preset. The composition is copied.
func (p Preset) Parameters() classification.Parameters {
	return classification.Parameters{
		Composition:         p.Composition.Clone(),
		DistanceAU:          p.DistanceAU,
		StarType:            p.StarType,
		MassEarth:           p.MassEarth,
		RotationPeriodHours: p.RotationPeriodHours,
	}
}

var load = sync.OnceValues(func() ([]Preset, error) {
	return parse(presetsYAML)
})

func parse(data []byte) ([]Preset, error) {
	var presets []Preset
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}

	seen := make(map[string]bool, len(presets))
	for _, p := range presets {
		if p.ID == "" {
			return nil, fmt.Errorf("preset %q has no id", p.Name)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate preset id %q", p.ID)
		}
		seen[p.ID] = true

		if !p.StarType.Valid() {
			return nil, fmt.Errorf("preset %s: unknown star type %q", p.ID, p.StarType)
		}
		for e := range p.Composition {
			if !e.Valid() {
				return nil, fmt.Errorf("preset %s: unknown element %q", p.ID, e)
			}
		}
	}
	return presets, nil
}

// All returns the presets in display order. The slice is a copy.
func All() ([]Preset, error) {
	presets, err := load()
	if err != nil {
		return nil, err
	}
	out := make([]Preset, len(presets))
	for i, p := range presets {
		p.Composition = p.Composition.Clone()
		out[i] = p
	}
	return out, nil
}

func ByID(id string) (Preset, error) {
	presets, err := load()
	if err != nil {
		return Preset{}, err
	}
	for _, p := range presets {
		if p.ID == id {
			p.Composition = p.Composition.Clone()
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}
