package main

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tokensmith/internal/config"
	"github.com/alexisbeaulieu97/tokensmith/internal/logger"
	themeerrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
	"github.com/alexisbeaulieu97/tokensmith/pkg/merge"
	"github.com/alexisbeaulieu97/tokensmith/pkg/theme"
)

// AppContext bundles the state shared by every subcommand.
type AppContext struct {
	flags *rootFlags
	log   *logger.Logger
}

// loadOverride layers the override files named on the command line.
func (a *AppContext) loadOverride(operation string) (merge.Tree, error) {
	override, err := config.LoadOverrides(a.flags.overrides...)
	if err != nil {
		return nil, newCommandError(operation, "loading override files", err, suggestionFor(err))
	}
	a.log.WithFields(map[string]any{"files": a.flags.overrides}).Debug("overrides loaded")
	return override, nil
}

// resolve loads the override files and builds the theme from them.
func (a *AppContext) resolve(operation string) (theme.Theme, error) {
	override, err := a.loadOverride(operation)
	if err != nil {
		return theme.Theme{}, err
	}

	t, err := theme.CreateTheme(override)
	if err != nil {
		a.log.Error(err, "theme rejected")
		return theme.Theme{}, newCommandError(operation, "resolving theme", err, suggestionFor(err))
	}
	a.log.Debug("theme resolved")
	return t, nil
}

func suggestionFor(err error) string {
	var (
		parseErr *themeerrors.ParseError
		colorErr *themeerrors.ColorFormatError
		shapeErr *themeerrors.ThemeShapeError
	)
	switch {
	case errors.As(err, &parseErr):
		return "Fix the syntax of the override file and try again."
	case errors.As(err, &colorErr):
		return "Use #rgb, #rrggbb, rgb(r, g, b) or rgba(r, g, b, a) colours."
	case errors.As(err, &shapeErr):
		return "Run 'tokensmith show' to list the recognised token keys."
	default:
		return "Re-run with --verbose for details."
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
