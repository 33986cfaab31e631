package quantity

import (
	"strconv"

	"github.com/zxzenius/z-units/errors"
	"github.com/zxzenius/z-units/unit"
)

// Quantity is a value bound to a unit of one kind. It is an immutable
// value type: conversions return new quantities. The environment is
// read at conversion time, never captured, so converted results track
// configuration changes.
type Quantity struct {
	kind     Kind
	unit     *unit.Unit
	value    float64
	hasValue bool
}

// Kind returns the kind the quantity belongs to.
func (q Quantity) Kind() Kind {
	return q.kind
}

// Unit returns the bound unit.
func (q Quantity) Unit() *unit.Unit {
	return q.unit
}

// Value returns the numeric value and whether one is present.
func (q Quantity) Value() (float64, bool) {
	return q.value, q.hasValue
}

// observe reports a conversion outcome when an observer is attached.
func (q Quantity) observe(from, to string, err error) {
	if q.kind.observer != nil {
		q.kind.observer.ObserveConversion(q.kind.name, from, to, err)
	}
}

// To converts the quantity to the named unit, reading the live
// environment. The target symbol is resolved before the value is
// checked, so an unknown unit is reported even on an empty quantity.
func (q Quantity) To(symbol string) (Quantity, error) {
	target, err := q.kind.resolve(symbol)
	if err != nil {
		q.observe(q.unit.Symbol(), symbol, err)
		return Quantity{}, err
	}
	return q.to(target)
}

func (q Quantity) to(target *unit.Unit) (Quantity, error) {
	from, to := q.unit.Symbol(), target.Symbol()
	if !q.hasValue {
		err := errors.WrapDomain(errors.ErrNoValue, "quantity", "To",
			"convert empty quantity to "+to)
		q.observe(from, to, err)
		return Quantity{}, err
	}
	if target == q.unit || from == to {
		q.unit = target
		q.observe(from, to, nil)
		return q, nil
	}
	env := q.kind.environment()
	value, err := target.FromBase(env, q.unit.ToBase(env, q.value))
	if err != nil {
		err = errors.WrapDomain(err, "quantity", "To",
			"convert "+q.String()+" to "+to)
		q.observe(from, to, err)
		return Quantity{}, err
	}
	q.unit = target
	q.value = value
	q.observe(from, to, nil)
	return q, nil
}

// ToBase converts to the family base unit.
func (q Quantity) ToBase() (Quantity, error) {
	return q.to(q.kind.registry.BaseUnit())
}

// BaseValue returns the value projected onto the base unit.
func (q Quantity) BaseValue() (float64, error) {
	if !q.hasValue {
		return 0, errors.WrapDomain(errors.ErrNoValue, "quantity", "BaseValue",
			"project empty quantity")
	}
	return q.unit.ToBase(q.kind.environment(), q.value), nil
}

// Equal reports whether both quantities denote the same physical
// value. Quantities of different kinds are never equal; two empty
// quantities of one kind are.
func (q Quantity) Equal(other Quantity) bool {
	if q.kind.name != other.kind.name {
		return false
	}
	if q.hasValue != other.hasValue {
		return false
	}
	if !q.hasValue {
		return true
	}
	a, err := q.BaseValue()
	if err != nil {
		return false
	}
	b, err := other.BaseValue()
	if err != nil {
		return false
	}
	return a == b
}

// Compare orders two quantities of the same kind by base value,
// returning -1, 0 or 1. Different kinds report ErrKindMismatch, an
// empty side ErrNoValue.
func (q Quantity) Compare(other Quantity) (int, error) {
	if q.kind.name != other.kind.name {
		return 0, errors.WrapDomain(errors.ErrKindMismatch, "quantity", "Compare",
			"compare "+q.kind.name+" with "+other.kind.name)
	}
	if !q.hasValue || !other.hasValue {
		return 0, errors.WrapDomain(errors.ErrNoValue, "quantity", "Compare",
			"compare empty quantity")
	}
	a, err := q.BaseValue()
	if err != nil {
		return 0, err
	}
	b, err := other.BaseValue()
	if err != nil {
		return 0, err
	}
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	default:
		return 0, nil
	}
}

// Less reports q < other.
func (q Quantity) Less(other Quantity) (bool, error) {
	c, err := q.Compare(other)
	return c < 0, err
}

// LessOrEqual reports q <= other.
func (q Quantity) LessOrEqual(other Quantity) (bool, error) {
	c, err := q.Compare(other)
	return c <= 0, err
}

// Greater reports q > other.
func (q Quantity) Greater(other Quantity) (bool, error) {
	c, err := q.Compare(other)
	return c > 0, err
}

// GreaterOrEqual reports q >= other.
func (q Quantity) GreaterOrEqual(other Quantity) (bool, error) {
	c, err := q.Compare(other)
	return c >= 0, err
}

// Scale multiplies the value by n, keeping the unit. Scaling an empty
// quantity is a no-op.
func (q Quantity) Scale(n float64) Quantity {
	if q.hasValue {
		q.value *= n
	}
	return q
}

// Format renders the quantity with the unit symbol in the given
// style. An empty quantity renders as "<empty>".
func (q Quantity) Format(style unit.SymbolStyle) string {
	if !q.hasValue {
		return "<empty>"
	}
	symbol := q.unit.Format(style)
	text := strconv.FormatFloat(q.value, 'g', -1, 64)
	if symbol == "" {
		return text
	}
	return text + " " + symbol
}

// String renders the quantity in quick style.
func (q Quantity) String() string {
	return q.Format(unit.StyleQuick)
}
