// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

// Package menu prints a restaurant menu. Its flags are declared here, next to
// the code that reads them.
package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-declflag/flag"
	"github.com/hashicorp/go-declflag/helper/pointer"
)

// Spice is how hot the dishes are.
type Spice int

const (
	Mild Spice = iota
	Medium
	Hot
)

func (s Spice) String() string {
	switch s {
	case Medium:
		return "medium"
	case Hot:
		return "hot"
	default:
		return "mild"
	}
}

var (
	BigMenu = flag.Bool(flag.Def[bool]{
		Name:    "big-menu",
		Usage:   "Show every course instead of the lunch menu.",
		Default: pointer.Of(false),
	})

	Language = flag.String(flag.Def[string]{
		Name:        "language",
		Shorthand:   "l",
		Usage:       "Comma separated languages to print the menu in.",
		Placeholder: "list",
		Default:     pointer.Of("english,french,german"),
	})

	Courses = flag.Uint8(flag.Def[uint8]{
		Name:    "courses",
		Usage:   "Number of courses on the big menu.",
		Default: pointer.Of[uint8](5),
		Group:   "kitchen",
	})

	SpiceLevel = flag.Enum(flag.Def[Spice]{
		Name:    "spice",
		Usage:   "How hot the kitchen cooks.",
		Default: pointer.Of(Mild),
		Group:   "kitchen",
	}, map[string]Spice{
		"mild":   Mild,
		"medium": Medium,
		"hot":    Hot,
	})
)

var dishes = []string{"soup", "salad", "fish", "roast", "cheese", "dessert", "coffee"}

// Menu is the resolved set of options for printing a menu.
type Menu struct {
	Big       bool
	Languages []string
	Courses   int
	Spice     Spice
}

// FromFlags builds a Menu from the command line.
func FromFlags() Menu {
	return Menu{
		Big:       BigMenu.Value(),
		Languages: splitList(Language.Value()),
		Courses:   int(Courses.Value()),
		Spice:     SpiceLevel.Value(),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Render writes the menu, one section per language.
func (m Menu) Render(w io.Writer) error {
	n := 2
	if m.Big {
		n = min(m.Courses, len(dishes))
	}

	for i, lang := range m.Languages {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Menu (%s, %s)\n", lang, m.Spice); err != nil {
			return err
		}
		for j, dish := range dishes[:n] {
			if _, err := fmt.Fprintf(w, "  %d. %s\n", j+1, dish); err != nil {
				return err
			}
		}
	}
	return nil
}
