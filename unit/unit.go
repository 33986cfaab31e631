// Package unit provides the unit definition model for z-units: a unit
// is a symbol plus an affine conversion to its family's base unit
// (base = factor*value + offset), where factor and offset may be fixed
// numbers or computed from the process environment at conversion time.
// The package also provides the per-family Registry grouping units
// around exactly one base unit.
package unit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zxzenius/z-units/config"
	"github.com/zxzenius/z-units/errors"
)

// SymbolStyle selects how a unit symbol is rendered.
type SymbolStyle int

const (
	// StyleQuick is the compact default style used for indexing:
	// no spaces, x**y -> xy, x*y -> x-y, parentheses omitted.
	// Example: kJ/(kmol*C) -> kJ/kmol-C
	StyleQuick SymbolStyle = iota
	// StyleDefined shows the stored definition formula with spaces
	// around operators. Example: m**3/h -> m ** 3 / h
	StyleDefined
)

// quickReplacer collapses a defined symbol to quick style. Listed
// longest-first so '**' wins over '*'.
var quickReplacer = strings.NewReplacer(
	"**", "",
	"*", "-",
	"(", "",
	")", "",
)

var operatorPattern = regexp.MustCompile(`\*{2}|\*|/`)

// Normalize maps any spelling of a symbol to its quick-style lookup
// key: whitespace stripped, then the quick-style collapse. Both
// "m**3/h" and "m3/h" normalize to "m3/h". This is the normalization
// used for registry keys and registry lookups.
func Normalize(symbol string) string {
	return quickReplacer.Replace(strings.ReplaceAll(symbol, " ", ""))
}

// Unit represents one measurement unit: a symbol and the affine
// conversion to its family's base unit. Units are immutable after
// construction and safe for concurrent use; dynamic factors and
// offsets read the environment passed to ToBase/FromBase.
type Unit struct {
	symbol string // defined style, whitespace stripped
	factor Factor
	offset Factor
}

// New creates a Unit. The symbol keeps its defined style ('m**3/h')
// with whitespace stripped; quick style is derived on demand. A fixed
// factor of zero is rejected with ErrInvalidUnit. A dynamic factor is
// not pre-validated: resolving to zero at call time surfaces as
// ErrZeroFactor from FromBase.
func New(symbol string, factor, offset Factor) (*Unit, error) {
	if factor.isZero() {
		return nil, errors.WrapInvalid(
			fmt.Errorf("unit '%s': factor shall not be 0: %w", symbol, errors.ErrInvalidUnit),
			"Unit", "New", "factor validation")
	}
	return &Unit{
		symbol: strings.ReplaceAll(symbol, " ", ""),
		factor: factor,
		offset: offset,
	}, nil
}

// MustNew is New for static catalogs; it panics on an invalid
// definition.
func MustNew(symbol string, factor, offset Factor) *Unit {
	u, err := New(symbol, factor, offset)
	if err != nil {
		panic(err)
	}
	return u
}

// NewBase creates a base unit: factor 1, offset 0 by construction.
// Exactly one per family, designated at registration.
func NewBase(symbol string) *Unit {
	return MustNew(symbol, Fixed(1), Fixed(0))
}

// Symbol returns the quick-style symbol, the unit's identity within
// its registry.
func (u *Unit) Symbol() string {
	return quickReplacer.Replace(u.symbol)
}

// DefinedSymbol returns the expanded definition-style symbol with
// spaces around operators.
func (u *Unit) DefinedSymbol() string {
	if u.symbol == "" {
		return u.symbol
	}
	return operatorPattern.ReplaceAllString(u.symbol, " ${0} ")
}

// Format renders the symbol in the requested style.
func (u *Unit) Format(style SymbolStyle) string {
	if style == StyleDefined {
		return u.DefinedSymbol()
	}
	return u.Symbol()
}

// String returns the quick-style symbol.
func (u *Unit) String() string {
	return u.Symbol()
}

// Factor returns the unit's conversion factor.
func (u *Unit) Factor() Factor {
	return u.factor
}

// Offset returns the unit's conversion offset.
func (u *Unit) Offset() Factor {
	return u.offset
}

// ToBase converts a value in this unit to the family's base unit:
// factor*value + offset, resolved against env (nil selects the
// process default environment).
func (u *Unit) ToBase(env *config.Environment, value float64) float64 {
	return u.factor.Resolve(env)*value + u.offset.Resolve(env)
}

// FromBase converts a base-unit value to this unit:
// (value - offset) / factor. Returns ErrZeroFactor if a dynamic
// factor resolves to zero at call time; fixed factors were already
// validated at construction.
func (u *Unit) FromBase(env *config.Environment, value float64) (float64, error) {
	factor := u.factor.Resolve(env)
	if factor == 0 {
		return 0, errors.WrapDomain(
			fmt.Errorf("unit '%s': %w", u.Symbol(), errors.ErrZeroFactor),
			"Unit", "FromBase", "factor resolution")
	}
	return (value - u.offset.Resolve(env)) / factor, nil
}

// hasOffset reports whether the unit carries any offset: a dynamic
// offset or a fixed nonzero one. Offset-bearing (affine) units cannot
// be composed.
func (u *Unit) hasOffset() bool {
	return u.offset.IsDynamic() || !u.offset.isZero()
}

// guardCompose rejects composition of affine units. Composition only
// combines factors; an offset has no meaningful algebraic combination
// and silently dropping it would corrupt conversions, so composing an
// offset-bearing unit fails loudly.
func guardCompose(op string, operands ...*Unit) error {
	for _, u := range operands {
		if u.hasOffset() {
			return errors.WrapInvalid(
				fmt.Errorf("unit '%s' has an offset and cannot be composed: %w",
					u.Symbol(), errors.ErrInvalidUnit),
				"Unit", op, "offset guard")
		}
	}
	return nil
}

// Mul composes a product unit: factor is the product of the operand
// factors, symbol the textual combination. Fails for offset-bearing
// operands.
func (u *Unit) Mul(other *Unit) (*Unit, error) {
	if err := guardCompose("Mul", u, other); err != nil {
		return nil, err
	}
	return New(u.symbol+"*"+other.symbol, u.factor.times(other.factor), Fixed(0))
}

// Div composes a quotient unit.
func (u *Unit) Div(other *Unit) (*Unit, error) {
	if err := guardCompose("Div", u, other); err != nil {
		return nil, err
	}
	return New(u.symbol+"/"+other.symbol, u.factor.over(other.factor), Fixed(0))
}

// Pow raises the unit to a power.
func (u *Unit) Pow(n float64) (*Unit, error) {
	if err := guardCompose("Pow", u); err != nil {
		return nil, err
	}
	return New(fmt.Sprintf("%s**%g", u.symbol, n), u.factor.pow(n), Fixed(0))
}

// Scale scales the unit's factor by a plain number, keeping the
// symbol. Typically followed by Renamed to give the derived unit its
// catalog symbol (a barrel is 42 scaled gallons).
func (u *Unit) Scale(n float64) (*Unit, error) {
	if err := guardCompose("Scale", u); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, errors.WrapInvalid(
			fmt.Errorf("unit '%s': scale by 0: %w", u.Symbol(), errors.ErrInvalidUnit),
			"Unit", "Scale", "factor validation")
	}
	return New(u.symbol, u.factor.times(Fixed(n)), Fixed(0))
}

// Renamed returns a copy of the unit carrying a new symbol. Factor
// and offset are unchanged.
func (u *Unit) Renamed(symbol string) *Unit {
	return &Unit{
		symbol: strings.ReplaceAll(symbol, " ", ""),
		factor: u.factor,
		offset: u.offset,
	}
}
