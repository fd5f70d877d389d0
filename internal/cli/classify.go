package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"planet-builder/internal/physics"
	"planet-builder/internal/planet"
	"planet-builder/internal/preset"

	"github.com/spf13/cobra"
)

type classifyOptions struct {
	preset   string
	elements []string
	distance float64
	star     string
	mass     float64
	rotation float64
	json     bool
}

func newClassifyCmd(a *app) *cobra.Command {
	opts := &classifyOptions{}

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a planet and score its habitability",
		Long: `Classify a planet and score its habitability.

Composition is given as repeated --element SYMBOL=PARTS flags. Starting from a
preset loads all of its values; any flag given alongside replaces the preset
value, and --element flags replace the whole preset composition.

Examples:
  planetctl classify --preset earth
  planetctl classify --preset mars --distance 1.2
  planetctl classify -e H=60 -e He=20 -e Si=20 --mass 15 --distance 5
  planetctl classify --preset hot-jupiter --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.configuration(cmd)
			if err != nil {
				return err
			}

			assessment, err := a.service.Assess(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), assessment)
			}
			renderAssessment(cmd.OutOrStdout(), a.theme, assessment)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.preset, "preset", "p", "", "start from a built-in preset (see 'planetctl presets')")
	flags.StringArrayVarP(&opts.elements, "element", "e", nil, "element and relative parts, e.g. Si=20 (repeatable)")
	flags.Float64VarP(&opts.distance, "distance", "d", 1, "orbital distance in AU")
	flags.StringVarP(&opts.star, "star", "s", string(physics.StarG), "star type: O, B, A, F, G, K or M")
	flags.Float64VarP(&opts.mass, "mass", "m", 1, "mass in Earth masses")
	flags.Float64VarP(&opts.rotation, "rotation", "r", 24, "rotation period in hours")
	flags.BoolVar(&opts.json, "json", false, "print the assessment as JSON")

	return cmd
}

// configuration merges the preset, if any, with the flags the user actually set.
func (o *classifyOptions) configuration(cmd *cobra.Command) (planet.Configuration, error) {
	flags := cmd.Flags()

	cfg := planet.Configuration{
		Composition:         physics.Composition{},
		DistanceAU:          o.distance,
		StarType:            physics.StarG,
		MassEarth:           o.mass,
		RotationPeriodHours: o.rotation,
	}

	if o.preset != "" {
		p, err := preset.ByID(o.preset)
		if err != nil {
			return cfg, fmt.Errorf("unknown preset %q", o.preset)
		}
		cfg = p.Parameters()
		if flags.Changed("distance") {
			cfg.DistanceAU = o.distance
		}
		if flags.Changed("mass") {
			cfg.MassEarth = o.mass
		}
		if flags.Changed("rotation") {
			cfg.RotationPeriodHours = o.rotation
		}
	}

	if o.preset == "" || flags.Changed("star") {
		star, err := physics.ParseStarType(o.star)
		if err != nil {
			return cfg, err
		}
		cfg.StarType = star
	}

	if len(o.elements) > 0 {
		composition, err := parseElements(o.elements)
		if err != nil {
			return cfg, err
		}
		cfg.Composition = composition
	}

	return cfg, nil
}

func parseElements(values []string) (physics.Composition, error) {
	composition := physics.Composition{}
	for _, v := range values {
		symbol, partsText, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("invalid element %q: expected SYMBOL=PARTS", v)
		}

		element, err := physics.ParseElement(symbol)
		if err != nil {
			return nil, err
		}

		parts, err := strconv.ParseFloat(strings.TrimSpace(partsText), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid parts for %s: %w", element, err)
		}
		composition[element] += parts
	}
	return composition, nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
