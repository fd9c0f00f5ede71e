package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tokensmith/internal/logger"
)

type rootFlags struct {
	verbose   bool
	overrides []string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{flags: flags, log: logger.Nop()}

	cmd := &cobra.Command{
		Use:           "tokensmith",
		Short:         "tokensmith resolves design-token themes from layered overrides",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "info"
			if flags.verbose {
				level = "debug"
			}
			log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			app.log = log.Component(cmd.Name())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringArrayVarP(&flags.overrides, "override", "o", nil, "Override file (YAML or JSON); repeat to layer, later files win")

	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newCSSCmd(app))
	cmd.AddCommand(newDeriveCmd())
	cmd.AddCommand(newDiffCmd(app))
	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
