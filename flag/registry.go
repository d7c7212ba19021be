// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
)

// Registry is an ordered collection of flags with lookup by long and short
// name. Flags are registered while the program initializes and the registry
// is parsed once afterwards; a Registry is not safe for concurrent use.
//
// Each registered flag is mirrored into a pflag.FlagSet, which does the
// parsing.
type Registry struct {
	name   string
	logger hclog.Logger
	fs     *pflag.FlagSet

	flags []Descriptor
	long  map[string]Descriptor
	short map[rune]Descriptor

	parsed bool
	args   []string
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger that registration and parsing trace to.
func WithLogger(l hclog.Logger) RegistryOption {
	return func(r *Registry) {
		r.SetLogger(l)
	}
}

// NewRegistry returns an empty registry. The name is used in error messages.
func NewRegistry(name string, opts ...RegistryOption) *Registry {
	r := &Registry{
		name:   name,
		logger: hclog.NewNullLogger(),
		fs:     newFlagSet(name),
		long:   make(map[string]Descriptor),
		short:  make(map[rune]Descriptor),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CommandLine is the process-wide registry. The package-level declaration
// functions such as String and Bool register into it.
var CommandLine = NewRegistry(filepath.Base(os.Args[0]))

// Name returns the registry's name.
func (r *Registry) Name() string { return r.name }

// SetLogger replaces the registry's logger. A nil logger disables logging.
func (r *Registry) SetLogger(l hclog.Logger) {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	r.logger = l.Named("flag")
}

// Register adds d to the registry. It fails if d's long or short name is
// already registered, if a name cannot be used on the command line, or if the
// registry has already been parsed. A failed registration leaves the registry
// unchanged.
func (r *Registry) Register(d Descriptor) error {
	if r.parsed {
		return r.regError(d.Name(), ErrRegistryFrozen)
	}
	if err := validateName(d.Name()); err != nil {
		return r.regError(d.Name(), err)
	}
	if _, ok := r.long[d.Name()]; ok {
		return r.regError(d.Name(), fmt.Errorf("%w: --%s", ErrDuplicate, d.Name()))
	}
	s := d.Shorthand()
	if prev, ok := r.short[s]; ok && s != 0 {
		return r.regError(d.Name(), fmt.Errorf("%w: shorthand -%c already used by --%s",
			ErrDuplicate, s, prev.Name()))
	}

	// The checks above keep AddFlag from panicking on a collision.
	r.fs.AddFlag(r.toPFlag(d))
	if s != 0 {
		r.short[s] = d
	}
	r.long[d.Name()] = d
	r.flags = append(r.flags, d)
	r.logger.Trace("registered flag", "name", d.Name(), "shorthand", string(shorthandOrEmpty(d)))
	return nil
}

// MustRegister is like Register but panics on error. Name collisions are
// programming errors and should stop the program before it parses anything.
func (r *Registry) MustRegister(d Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// RegisterAll registers every descriptor, continuing past failures, and
// returns all of the failures together.
func (r *Registry) RegisterAll(ds ...Descriptor) error {
	var mErr *multierror.Error
	for _, d := range ds {
		if err := r.Register(d); err != nil {
			mErr = multierror.Append(mErr, err)
		}
	}
	return mErr.ErrorOrNil()
}

func (r *Registry) regError(name string, err error) error {
	return &RegistrationError{Registry: r.name, Name: name, Err: err}
}

func validateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: long name is empty", ErrInvalidName)
	case strings.HasPrefix(name, "-"):
		return fmt.Errorf("%w: %q starts with a dash", ErrInvalidName, name)
	case strings.ContainsRune(name, '='):
		return fmt.Errorf("%w: %q contains '='", ErrInvalidName, name)
	case strings.IndexFunc(name, unicode.IsSpace) >= 0:
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidName, name)
	}
	return nil
}

func shorthandOrEmpty(d Descriptor) []rune {
	if d.Shorthand() == 0 {
		return nil
	}
	return []rune{d.Shorthand()}
}

// FindLong returns the flag registered under the long name.
func (r *Registry) FindLong(name string) (Descriptor, bool) {
	d, ok := r.long[name]
	return d, ok
}

// FindShort returns the flag registered under the shorthand.
func (r *Registry) FindShort(s rune) (Descriptor, bool) {
	d, ok := r.short[s]
	return d, ok
}

// All returns the registered flags in registration order. Callers that need
// a stable order across builds should use Sorted.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.flags))
	copy(out, r.flags)
	return out
}

// Sorted returns the registered flags ordered by long name, compared
// byte-wise, so "Zeta" sorts before "alpha".
func (r *Registry) Sorted() []Descriptor {
	out := r.All()
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name() < out[j].Name()
	})
	return out
}

// VisitAll calls fn for every flag in long-name order.
func (r *Registry) VisitAll(fn func(Descriptor)) {
	for _, d := range r.Sorted() {
		fn(d)
	}
}

// Visit calls fn, in long-name order, for each flag supplied on the command
// line.
func (r *Registry) Visit(fn func(Descriptor)) {
	r.fs.Visit(func(f *pflag.Flag) {
		fn(r.long[f.Name])
	})
}

// Parsed reports whether Parse has been called.
func (r *Registry) Parsed() bool { return r.parsed }

// Args returns the positional arguments left after parsing.
func (r *Registry) Args() []string { return r.args }

// NArg is the number of positional arguments left after parsing.
func (r *Registry) NArg() int { return len(r.args) }

// Lookup returns the CommandLine flag with the given long name.
func Lookup(name string) (Descriptor, bool) {
	return CommandLine.FindLong(name)
}

// Parse parses args, which should not include the program name, against
// CommandLine.
func Parse(args []string) ([]string, error) {
	return CommandLine.Parse(args)
}

// Args returns the positional arguments from the last CommandLine parse.
func Args() []string {
	return CommandLine.Args()
}
