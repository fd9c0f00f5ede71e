package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/tokensmith/internal/render"
	"github.com/alexisbeaulieu97/tokensmith/pkg/diff"
	"github.com/alexisbeaulieu97/tokensmith/pkg/theme"
)

func newDiffCmd(app *AppContext) *cobra.Command {
	var unified bool

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show how the override files change the default theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, app, unified)
		},
	}

	cmd.Flags().BoolVarP(&unified, "unified", "u", false, "Print a unified YAML diff instead of the changed paths")

	return cmd
}

func runDiff(cmd *cobra.Command, app *AppContext, unified bool) error {
	resolved, err := app.resolve("diff theme")
	if err != nil {
		return err
	}
	defaults := theme.AssembleDefaults()
	out := cmd.OutOrStdout()

	if unified {
		before, err := yaml.Marshal(defaults.Tree())
		if err != nil {
			return newCommandError("diff theme", "encoding defaults", err, "Re-run with --verbose for details.")
		}
		after, err := yaml.Marshal(resolved.Tree())
		if err != nil {
			return newCommandError("diff theme", "encoding resolved theme", err, "Re-run with --verbose for details.")
		}
		fmt.Fprint(out, diff.GenerateUnifiedDiff(before, after, "defaults", "resolved"))
		return nil
	}

	fmt.Fprintln(out, render.BuildStyles(resolved).Changes(diff.Changes(defaults.Tree(), resolved.Tree())))
	return nil
}
