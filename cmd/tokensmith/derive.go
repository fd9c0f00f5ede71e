package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tokensmith/internal/render"
	"github.com/alexisbeaulieu97/tokensmith/pkg/color"
	"github.com/alexisbeaulieu97/tokensmith/pkg/tokens"
)

type deriveOptions struct {
	tonalOffset       float64
	contrastThreshold float64
}

func newDeriveCmd() *cobra.Command {
	opts := &deriveOptions{}

	cmd := &cobra.Command{
		Use:   "derive <color>",
		Short: "Derive light, dark and contrast text shades from a main colour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDerive(cmd, args[0], opts)
		},
	}

	cmd.Flags().Float64Var(&opts.tonalOffset, "tonal-offset", color.DefaultTonalOffset, "Fraction by which light and dark move away from main")
	cmd.Flags().Float64Var(&opts.contrastThreshold, "contrast-threshold", color.DefaultContrastThreshold, "Minimum contrast ratio against white for white text")

	return cmd
}

func runDerive(cmd *cobra.Command, value string, opts *deriveOptions) error {
	if opts.tonalOffset < 0 || opts.tonalOffset > 1 {
		return newCommandError("derive colour", "validating flags", fmt.Errorf("tonal offset %v is outside [0, 1]", opts.tonalOffset), "Pass a fraction such as --tonal-offset 0.2.")
	}

	category, err := color.Derive(tokens.ColorCategory{Main: value}, opts.tonalOffset, opts.contrastThreshold)
	if err != nil {
		return newCommandError("derive colour", fmt.Sprintf("parsing %q", value), err, suggestionFor(err))
	}
	ratio, err := color.ContrastRatio(category.Main, category.ContrastText)
	if err != nil {
		return newCommandError("derive colour", "measuring contrast", err, suggestionFor(err))
	}

	out := cmd.OutOrStdout()
	if isTerminal(out) {
		fmt.Fprintln(out, render.Swatch(category.Main, category.ContrastText)+
			render.Swatch(category.Light, category.ContrastText)+
			render.Swatch(category.Dark, category.ContrastText))
	}
	fmt.Fprintf(out, "main:         %s\n", category.Main)
	fmt.Fprintf(out, "light:        %s\n", category.Light)
	fmt.Fprintf(out, "dark:         %s\n", category.Dark)
	fmt.Fprintf(out, "contrastText: %s\n", category.ContrastText)
	fmt.Fprintf(out, "contrast:     %.2f:1\n", ratio)
	return nil
}
