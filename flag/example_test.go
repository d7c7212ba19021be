// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flag_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-declflag/flag"
	"github.com/hashicorp/go-declflag/helper/pointer"
)

func ExampleRegistry_Parse() {
	reg := flag.NewRegistry("dinner")
	bigMenu, _ := flag.New[bool](reg, flag.Def[bool]{
		Name:    "big-menu",
		Default: pointer.Of(false),
	}, flag.BoolValue{})
	language, _ := flag.New[string](reg, flag.Def[string]{
		Name:      "language",
		Shorthand: "l",
		Default:   pointer.Of("english,french,german"),
	}, flag.StringValue{})

	args, err := reg.Parse([]string{"--big-menu", "-l", "spanish", "tonight"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(bigMenu.Value(), language.Value(), args)
	// Output: true spanish [tonight]
}

func ExampleRegistry_Parse_error() {
	reg := flag.NewRegistry("dinner")
	_, _ = flag.New[int](reg, flag.Def[int]{Name: "count"}, flag.SignedValue[int]{})

	_, err := reg.Parse([]string{"--count", "many"})
	fmt.Println(err)
	fmt.Println(errors.Is(err, flag.ErrInvalidValue))
	// Output:
	// invalid value for flag --count: "many" is not a valid int
	// true
}

func ExampleRegistry_WriteHelp() {
	reg := flag.NewRegistry("dinner")
	_, _ = flag.New[string](reg, flag.Def[string]{
		Name:      "file",
		Shorthand: "f",
		Usage:     "Path to the order file.",
	}, flag.PathValue{})
	_, _ = flag.New[uint](reg, flag.Def[uint]{
		Name:    "guests",
		Usage:   "Number of guests.",
		Default: pointer.Of[uint](2),
		Group:   "booking",
	}, flag.UnsignedValue[uint]{})

	_ = reg.WriteHelp(os.Stdout)
	// Output:
	// Options:
	//
	//   -f, --file=<path>
	//         Path to the order file.
	//
	// Booking:
	//
	//       --guests=<uint> (default 2)
	//         Number of guests.
}

type celsius float64

func ExampleCoercerFunc() {
	reg := flag.NewRegistry("oven")
	temp, _ := flag.New[celsius](reg, flag.Def[celsius]{Name: "temp"},
		flag.CoercerFunc[celsius](func(arg flag.Arg) (celsius, error) {
			var c celsius
			if _, err := fmt.Sscanf(arg.String(), "%gC", &c); err != nil {
				return 0, flag.Errorf("%q is not a temperature like 180C", arg.String())
			}
			return c, nil
		}))

	_, _ = reg.Parse([]string{"--temp=180C"})
	fmt.Println(temp.Value())
	// Output: 180
}
