package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/tokensmith/pkg/theme"
)

type showOptions struct {
	format           string
	customProperties bool
}

func newShowCmd(app *AppContext) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved theme",
		Long: `Print the theme produced by layering the override files over the defaults.

With --custom-properties, palette, typography, shadow and shape values are
printed as var(--name, fallback) references.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "yaml", "Output format: yaml or json")
	cmd.Flags().BoolVar(&opts.customProperties, "custom-properties", false, "Emit custom-property references instead of computed values")

	return cmd
}

func runShow(cmd *cobra.Command, app *AppContext, opts *showOptions) error {
	if opts.format != "yaml" && opts.format != "json" {
		return newCommandError("show theme", "validating flags", fmt.Errorf("unsupported format %q", opts.format), "Use --format yaml or --format json.")
	}

	t, err := app.resolve("show theme")
	if err != nil {
		return err
	}
	if opts.customProperties {
		t.UseCustomProperties = true
	}

	tree := theme.ApplyOutputMode(t)

	var out []byte
	if opts.format == "json" {
		out, err = json.MarshalIndent(tree, "", "  ")
		out = append(out, '\n')
	} else {
		out, err = yaml.Marshal(tree)
	}
	if err != nil {
		return newCommandError("show theme", "encoding output", err, "Re-run with --verbose for details.")
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
