// Package cli implements planetctl, which classifies and scores planets from the terminal.
package cli

import (
	"log/slog"
	"os"

	"planet-builder/internal/classification"
	"planet-builder/internal/planet"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is set at build time.
var Version = "0.1.0"

// app carries what every subcommand needs.
type app struct {
	service *planet.Service
	theme   Theme
}

// NewRootCmd builds the planetctl command tree. Output is styled only when stdout is a
// terminal.
func NewRootCmd() *cobra.Command {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	a := &app{
		service: planet.NewService(classification.New(), nil, nil, logger),
		theme:   plainTheme,
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		a.theme = defaultTheme
	}

	root := &cobra.Command{
		Use:   "planetctl",
		Short: "Classify planets and score their habitability",
		Long: `planetctl runs the planet builder engine locally.

Describe a planet by its elemental composition, orbit, star and mass, or start
from one of the built-in presets, and get its planet type, an explanation of
the classification and a habitability breakdown.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newClassifyCmd(a))
	root.AddCommand(newPresetsCmd(a))
	root.AddCommand(newElementsCmd(a))
	return root
}

// Execute runs the root command against the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}
