package cli

import (
	"fmt"
	"text/tabwriter"

	"planet-builder/internal/physics"
	"planet-builder/internal/preset"

	"github.com/spf13/cobra"
)

func newPresetsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in planet presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			presets, err := preset.All()
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), presets)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSTAR\tDISTANCE\tMASS\tDESCRIPTION")
			for _, p := range presets {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%g AU\t%g M⊕\t%s\n",
					p.ID, p.Name, p.StarType, p.DistanceAU, p.MassEarth, a.theme.Hint.Render(p.Description))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print presets as JSON")
	return cmd
}

func newElementsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "List the elements and star types a planet can be built from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

			fmt.Fprintln(tw, a.theme.Title.Render("Elements"))
			for _, e := range physics.Elements() {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", e.Symbol, e.Name, e.AtomicNumber, e.Category)
			}

			fmt.Fprintln(tw)
			fmt.Fprintln(tw, a.theme.Title.Render("Star types"))
			for _, s := range physics.StarTypes() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Type, s.Name, s.Temperature)
			}
			return tw.Flush()
		},
	}
}
