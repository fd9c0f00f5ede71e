package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tokensmith/internal/tui/preview"
	"github.com/alexisbeaulieu97/tokensmith/pkg/merge"
	"github.com/alexisbeaulieu97/tokensmith/pkg/theme"
)

func newPreviewCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Browse the resolved theme interactively",
		Long: `Open an interactive previewer for the resolved theme. Press r to re-read
the override files after editing them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.resolve("preview theme")
			if err != nil {
				return err
			}

			provider, err := theme.NewProvider(&t, theme.WithLogger(app.log.Zerolog()))
			if err != nil {
				return newCommandError("preview theme", "creating provider", err, suggestionFor(err))
			}

			reload := func() (merge.Tree, error) {
				return app.loadOverride("reload overrides")
			}

			program := tea.NewProgram(preview.NewModel(provider, reload),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = program.Run()
			return err
		},
	}
}
