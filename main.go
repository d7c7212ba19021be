// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"os"

	mcli "github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/hashicorp/go-declflag/cli"
	"github.com/hashicorp/go-declflag/internal/demo/menu"
	"github.com/hashicorp/go-declflag/internal/demo/output"
)

func main() {
	os.Exit(cli.Main(os.Args, run))
}

func run(ctx context.Context, args []string, ui mcli.Ui) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	w, name, err := output.Open(afero.NewOsFs(), os.Stdout)
	if err != nil {
		return err
	}

	if err := menu.FromFlags().Render(w); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write menu: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to write menu: %w", err)
	}

	if output.Verbose.Value() {
		ui.Info(fmt.Sprintf("Menu written to %s", name))
	}
	return ctx.Err()
}
