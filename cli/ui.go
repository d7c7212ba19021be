// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mitchellh/cli"
	"golang.org/x/term"

	"github.com/hashicorp/go-declflag/flag"
)

const (
	// EnvPlain is the env var that can be set to force plain output mode.
	EnvPlain = "DECLFLAG_PLAIN"

	// EnvNoColor is the conventional env var for disabling color.
	EnvNoColor = "NO_COLOR"
)

func newUi(color bool) cli.Ui {
	var ui cli.Ui = &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}
	if color {
		ui = &cli.ColoredUi{
			ErrorColor: cli.UiColorRed,
			WarnColor:  cli.UiColorYellow,
			Ui:         ui,
		}
	}
	return ui
}

// colorEnabled reports whether output to f should be colored.
func colorEnabled(f *os.File) bool {
	if os.Getenv(EnvPlain) != "" || os.Getenv(EnvNoColor) != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// terminalWidth is the width of the terminal f is attached to, or the default
// help width when f is not a terminal.
func terminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return flag.DefaultHelpWidth
	}
	return width
}
