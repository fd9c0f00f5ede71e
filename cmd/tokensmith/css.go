package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tokensmith/pkg/theme"
)

func newCSSCmd(app *AppContext) *cobra.Command {
	var selector string

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the theme as CSS custom properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.resolve("generate CSS")
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), theme.CSSVariables(t, selector))
			return nil
		},
	}

	cmd.Flags().StringVar(&selector, "selector", theme.DefaultSelector, "Selector that scopes the declarations")

	return cmd
}
