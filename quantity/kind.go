// Package quantity pairs numeric values with units and converts
// between them. A Kind binds a family registry to an environment and
// makes quantities of that kind; the package-level kinds cover the
// whole built-in catalog.
package quantity

import (
	"strconv"
	"strings"

	"github.com/zxzenius/z-units/config"
	"github.com/zxzenius/z-units/errors"
	"github.com/zxzenius/z-units/unit"
)

// Observer receives the outcome of every conversion attempted through
// a Kind that carries it. Implementations must be safe for concurrent
// use. A nil observer is never called.
type Observer interface {
	ObserveConversion(kind, from, to string, err error)
}

// Kind is a named binding of one quantity family to a registry, an
// environment and optional instrumentation. The zero Kind is not
// usable; construct with NewKind or start from a package-level kind.
// Kind is a value type: With* methods return rebound copies and never
// mutate the receiver.
type Kind struct {
	name     string
	registry *unit.Registry
	env      *config.Environment
	observer Observer
}

// NewKind binds name to a registry. The environment defaults to the
// shared one until WithEnvironment rebinds it.
func NewKind(name string, registry *unit.Registry) Kind {
	return Kind{name: name, registry: registry}
}

// Name returns the kind name.
func (k Kind) Name() string {
	return k.name
}

// Registry returns the bound unit registry.
func (k Kind) Registry() *unit.Registry {
	return k.registry
}

// WithEnvironment returns a copy bound to env instead of the shared
// environment. Quantities made from the copy read env on every
// conversion.
func (k Kind) WithEnvironment(env *config.Environment) Kind {
	k.env = env
	return k
}

// WithObserver returns a copy that reports every conversion to o.
func (k Kind) WithObserver(o Observer) Kind {
	k.observer = o
	return k
}

// environment resolves the bound environment, falling back to the
// shared default.
func (k Kind) environment() *config.Environment {
	if k.env != nil {
		return k.env
	}
	return config.Default()
}

// resolve looks the symbol up in the bound registry. The empty symbol
// selects the base unit.
func (k Kind) resolve(symbol string) (*unit.Unit, error) {
	if strings.TrimSpace(symbol) == "" {
		return k.registry.BaseUnit(), nil
	}
	u, err := k.registry.Get(symbol)
	if err != nil {
		return nil, errors.WrapNotFound(err, "quantity", "resolve",
			"find unit "+symbol+" in family "+k.name)
	}
	return u, nil
}

// New makes a quantity of this kind. An empty symbol binds the base
// unit; an unknown symbol reports ErrUnitNotFound.
func (k Kind) New(value float64, symbol string) (Quantity, error) {
	u, err := k.resolve(symbol)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{kind: k, unit: u, value: value, hasValue: true}, nil
}

// MustNew is New for statically known symbols; it panics on error.
func (k Kind) MustNew(value float64, symbol string) Quantity {
	q, err := k.New(value, symbol)
	if err != nil {
		panic(err)
	}
	return q
}

// Empty returns a valueless quantity in the base unit. Converting it
// reports ErrNoValue.
func (k Kind) Empty() Quantity {
	return Quantity{kind: k, unit: k.registry.BaseUnit()}
}

// splitValue separates the leading number from the unit symbol. The
// separator space is optional: "1000mm" splits at the longest prefix
// that still parses as a number.
func splitValue(text string) (number, symbol string) {
	if number, symbol, ok := strings.Cut(text, " "); ok {
		return number, symbol
	}
	for i := len(text); i > 0; i-- {
		if _, err := strconv.ParseFloat(text[:i], 64); err == nil {
			return text[:i], text[i:]
		}
	}
	return text, ""
}

// Parse reads a quantity from text of the form "<number> <symbol>";
// the space is optional. A bare number binds the base unit.
func (k Kind) Parse(text string) (Quantity, error) {
	number, symbol := splitValue(strings.TrimSpace(text))
	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return Quantity{}, errors.WrapInvalid(err, "quantity", "Parse",
			"read numeric value from "+strconv.Quote(text))
	}
	return k.New(value, symbol)
}
