// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"

	"github.com/posener/complete/cmd/install"

	"github.com/hashicorp/go-declflag/internal/pkg/helper"
)

// autocompleteInstaller installs and uninstalls the shell hook that calls
// back into the program for completions.
type autocompleteInstaller interface {
	Install(string) error
	Uninstall(string) error
}

type realAutocompleteInstaller struct{}

func (i *realAutocompleteInstaller) Install(cmd string) error   { return install.Install(cmd) }
func (i *realAutocompleteInstaller) Uninstall(cmd string) error { return install.Uninstall(cmd) }

func (c *Config) autocomplete(g *globalFlags) int {
	if g.install.Value() && g.uninstall.Value() {
		c.Ui.Error("Either --autocomplete-install or --autocomplete-uninstall can be used, not both.")
		return ExitUsage
	}

	action, fn := "install", c.installer.Install
	if g.uninstall.Value() {
		action, fn = "uninstall", c.installer.Uninstall
	}

	if err := fn(c.Name); err != nil {
		c.Ui.Error(fmt.Sprintf("Error executing %s: %s", action, helper.FirstRuneToUpper(err.Error())))
		return ExitFailure
	}
	return ExitOK
}
