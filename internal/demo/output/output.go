// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

// Package output decides where the program's output goes.
package output

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/hashicorp/go-declflag/flag"
	"github.com/hashicorp/go-declflag/helper/pointer"
)

var (
	File = flag.Path(flag.Def[string]{
		Name:      "file",
		Shorthand: "f",
		Usage: `Write the output to this file instead of stdout. The
			file is replaced if it exists.`,
	})

	Verbose = flag.Bool(flag.Def[bool]{
		Name:      "verbose",
		Shorthand: "v",
		Usage:     "Report where the output was written.",
		Default:   pointer.Of(false),
	})
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Open returns the writer selected by --file, creating the file and its
// parent directory on fs, or stdout when the flag is absent. The caller
// closes the returned writer.
func Open(fs afero.Fs, stdout io.Writer) (io.WriteCloser, string, error) {
	path, err := File.Lookup()
	if err != nil {
		return nopCloser{stdout}, "stdout", nil
	}
	return create(fs, path)
}

func create(fs afero.Fs, path string) (io.WriteCloser, string, error) {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, "", fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	f, err := fs.Create(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, path, nil
}
