package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tokensmith/internal/config"
	"github.com/alexisbeaulieu97/tokensmith/pkg/theme"
)

func newValidateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check override files without printing the theme",
		Long: `Check that each override file parses, uses only recognised keys, and
resolves to a valid theme on its own and layered with the others.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, app, args)
		},
	}
}

func runValidate(cmd *cobra.Command, app *AppContext, args []string) error {
	files := append(append([]string{}, app.flags.overrides...), args...)
	out := cmd.OutOrStdout()

	if len(files) == 0 {
		fmt.Fprintln(out, "no override files given; defaults are valid")
		return nil
	}

	for _, file := range files {
		override, err := config.LoadOverride(file)
		if err != nil {
			return newCommandError("validate overrides", fmt.Sprintf("loading %s", file), err, suggestionFor(err))
		}
		if _, err := theme.CreateTheme(override); err != nil {
			return newCommandError("validate overrides", fmt.Sprintf("resolving %s", file), err, suggestionFor(err))
		}
		fmt.Fprintf(out, "✓ %s\n", file)
	}

	app.flags.overrides = files
	if _, err := app.resolve("validate overrides"); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d override file(s) valid\n", len(files))
	return nil
}
