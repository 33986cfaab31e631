package unit

import (
	"math"

	"github.com/zxzenius/z-units/config"
)

// DynamicFunc computes a conversion factor or offset from the current
// environment. Implementations must be pure reads: no caching, no
// mutation, so that every conversion observes the live configuration.
type DynamicFunc func(env *config.Environment) float64

// Factor is a conversion factor or offset: either a fixed number or a
// function of the process environment. The zero value is Fixed(0),
// which is a valid offset but rejected as a unit factor at
// construction time.
type Factor struct {
	value float64
	fn    DynamicFunc
}

// Fixed returns a Factor with a constant value.
func Fixed(v float64) Factor {
	return Factor{value: v}
}

// Dynamic returns a Factor computed from the environment at every
// resolution. Dynamic factors are not pre-validated: one that
// resolves to zero surfaces as ErrZeroFactor during FromBase.
func Dynamic(fn DynamicFunc) Factor {
	return Factor{fn: fn}
}

// IsDynamic reports whether the factor depends on the environment.
func (f Factor) IsDynamic() bool {
	return f.fn != nil
}

// Resolve returns the current value of the factor. A nil env selects
// the process-wide default environment; fixed factors never touch it.
func (f Factor) Resolve(env *config.Environment) float64 {
	if f.fn == nil {
		return f.value
	}
	if env == nil {
		env = config.Default()
	}
	return f.fn(env)
}

// isZero reports whether a fixed factor is exactly zero. Dynamic
// factors always report false: they cannot be checked ahead of time.
func (f Factor) isZero() bool {
	return f.fn == nil && f.value == 0
}

// combine builds the algebraic combination of two factors. When both
// operands are fixed the result is computed eagerly; when either is
// dynamic the result is a closure over both, so derived
// standard-condition units stay configuration-sensitive.
func combine(a, b Factor, op func(x, y float64) float64) Factor {
	if !a.IsDynamic() && !b.IsDynamic() {
		return Fixed(op(a.value, b.value))
	}
	return Dynamic(func(env *config.Environment) float64 {
		return op(a.Resolve(env), b.Resolve(env))
	})
}

func (f Factor) times(other Factor) Factor {
	return combine(f, other, func(x, y float64) float64 { return x * y })
}

func (f Factor) over(other Factor) Factor {
	return combine(f, other, func(x, y float64) float64 { return x / y })
}

func (f Factor) pow(n float64) Factor {
	return combine(f, Fixed(n), math.Pow)
}
