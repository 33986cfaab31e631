package unit

import (
	"fmt"
	"slices"

	"github.com/zxzenius/z-units/errors"
)

// Registry holds the units of one physical-quantity family, keyed by
// quick-style symbol, with exactly one designated base unit. A
// registry is assembled once at catalog build time and never mutated
// afterward (there is no removal operation), so reads need no
// locking.
type Registry struct {
	name  string
	units map[string]*Unit
	order []string
	base  *Unit
}

// NewRegistry creates an empty family with no base unit yet.
func NewRegistry(name string) *Registry {
	return &Registry{
		name:  name,
		units: make(map[string]*Unit),
	}
}

// Register adds a unit to the family. The registration fails with
// ErrDuplicateSymbol if the symbol is already present and with
// ErrDuplicateBaseUnit if isBase is set while a base unit exists.
// A base unit must have factor 1 and offset 0, the registry rejects
// any other definition as the family reference point.
func (r *Registry) Register(u *Unit, isBase bool) error {
	if u == nil {
		return errors.WrapInvalid(
			fmt.Errorf("nil unit: %w", errors.ErrInvalidUnit),
			"Registry", "Register", "unit validation")
	}

	key := u.Symbol()
	if _, exists := r.units[key]; exists {
		return errors.WrapInvalid(
			fmt.Errorf("family '%s', unit '%s': %w", r.name, key, errors.ErrDuplicateSymbol),
			"Registry", "Register", "duplicate symbol check")
	}

	if isBase {
		if r.base != nil {
			return errors.WrapInvalid(
				fmt.Errorf("family '%s': base already '%s': %w",
					r.name, r.base.Symbol(), errors.ErrDuplicateBaseUnit),
				"Registry", "Register", "base unit check")
		}
		if u.factor.IsDynamic() || u.factor.Resolve(nil) != 1 || u.hasOffset() {
			return errors.WrapInvalid(
				fmt.Errorf("family '%s', unit '%s': base unit must have factor 1 and offset 0: %w",
					r.name, key, errors.ErrInvalidUnit),
				"Registry", "Register", "base unit validation")
		}
	}

	r.units[key] = u
	r.order = append(r.order, key)
	if isBase {
		r.base = u
	}
	return nil
}

// MustRegister is Register for static catalog assembly; it panics on
// a defective registration.
func (r *Registry) MustRegister(u *Unit, isBase bool) {
	if err := r.Register(u, isBase); err != nil {
		panic(err)
	}
}

// Get looks up a unit by symbol. The query goes through the same
// normalization as registration keys (whitespace strip plus
// quick-style collapse), so 'm**3/h' and 'm3/h' resolve to the same
// unit. Anything else is an exact-match miss: no fuzzy resolution,
// aliases must be registered as additional entries.
func (r *Registry) Get(symbol string) (*Unit, error) {
	u, ok := r.units[Normalize(symbol)]
	if !ok {
		return nil, errors.WrapNotFound(
			fmt.Errorf("family '%s', unit '%s': %w", r.name, symbol, errors.ErrUnitNotFound),
			"Registry", "Get", "symbol lookup")
	}
	return u, nil
}

// Contains reports whether the family has a unit under the symbol.
func (r *Registry) Contains(symbol string) bool {
	_, ok := r.units[Normalize(symbol)]
	return ok
}

// Name returns the family label.
func (r *Registry) Name() string {
	return r.name
}

// BaseUnit returns the family's base unit, nil while unset during
// assembly.
func (r *Registry) BaseUnit() *Unit {
	return r.base
}

// Units returns the registered units in insertion order.
func (r *Registry) Units() []*Unit {
	units := make([]*Unit, len(r.order))
	for i, key := range r.order {
		units[i] = r.units[key]
	}
	return units
}

// Symbols returns the registered quick-style symbols in insertion
// order.
func (r *Registry) Symbols() []string {
	return slices.Clone(r.order)
}
