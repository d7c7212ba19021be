// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

// gendocs writes the Markdown reference for the demo program's flags.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-declflag/flag"

	// Imported for the flags they declare.
	_ "github.com/hashicorp/go-declflag/cli"
	_ "github.com/hashicorp/go-declflag/internal/demo/menu"
	_ "github.com/hashicorp/go-declflag/internal/demo/output"
)

func main() {
	args := os.Args
	if len(args) != 2 {
		fmt.Printf("gendocs: requires 1 parameter, received %v\n", len(args)-1)
		os.Exit(1)
	}
	if err := writeDocs(args[1]); err != nil {
		fmt.Printf("gendocs: %s\n", err)
		os.Exit(1)
	}
}

func writeDocs(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := flag.CommandLine.WriteMarkdown(f, "Command-line flags"); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
