// Package config holds the process-wide environment parameters read by
// dynamic unit conversions: the standard temperature used by
// standard-condition gas units and the local atmospheric pressure used
// by gauge pressure units.
//
// The environment is the only mutable state in the library. All access
// goes through an RWMutex so that a writer changing the standard
// temperature cannot race a reader mid-conversion. Dynamic units read
// the environment at conversion time, never at definition time, so
// identical conversions performed before and after a change may
// legitimately yield different results.
package config

import (
	"math"
	"sync"

	"github.com/zxzenius/z-units/errors"
)

// Default environment parameter values.
const (
	// DefaultStandardTemperature is the standard temperature for
	// standard-condition gas volume conversion, in degrees Celsius.
	DefaultStandardTemperature = 20.0

	// DefaultAtmosphericPressure is the standard atmosphere constant,
	// in pascal. Used as the default local atmospheric pressure for
	// gauge pressure conversion.
	DefaultAtmosphericPressure = 101325.0

	// AbsoluteZero in degrees Celsius. The lower bound for the
	// standard temperature: the standard-condition factor divides by
	// (273.15 + T), so temperatures at or below this are meaningless.
	AbsoluteZero = -273.15
)

// Environment provides thread-safe access to the mutable conversion
// parameters. The zero value is not usable; call NewEnvironment or use
// the process-wide Default instance.
type Environment struct {
	mu                  sync.RWMutex
	standardTemperature float64 // degC
	atmosphericPressure float64 // Pa
}

// NewEnvironment creates an Environment initialized to defaults.
func NewEnvironment() *Environment {
	env := &Environment{}
	env.Reset()
	return env
}

// Reset restores both parameters to their documented defaults:
// 20 degC standard temperature, standard atmosphere pressure.
func (e *Environment) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.standardTemperature = DefaultStandardTemperature
	e.atmosphericPressure = DefaultAtmosphericPressure
}

// StandardTemperature returns the standard temperature in degrees Celsius.
func (e *Environment) StandardTemperature() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.standardTemperature
}

// SetStandardTemperature sets the standard temperature in degrees
// Celsius. The value must be finite and above absolute zero
// (-273.15 degC); anything else returns ErrInvalidConfigValue.
func (e *Environment) SetStandardTemperature(t float64) error {
	if math.IsNaN(t) || math.IsInf(t, 0) || t <= AbsoluteZero {
		return errors.WrapInvalid(
			errors.ErrInvalidConfigValue,
			"Environment", "SetStandardTemperature", "temperature validation")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.standardTemperature = t
	return nil
}

// LocalAtmosphericPressure returns the local atmospheric pressure in pascal.
func (e *Environment) LocalAtmosphericPressure() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.atmosphericPressure
}

// SetLocalAtmosphericPressure sets the local atmospheric pressure in
// pascal. The value must be finite and strictly positive; anything
// else returns ErrInvalidConfigValue.
func (e *Environment) SetLocalAtmosphericPressure(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		return errors.WrapInvalid(
			errors.ErrInvalidConfigValue,
			"Environment", "SetLocalAtmosphericPressure", "pressure validation")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.atmosphericPressure = p
	return nil
}

// Global environment instance and initialization guard.
var (
	defaultEnv  *Environment
	defaultOnce sync.Once
)

// Default returns the process-wide Environment instance. All catalog
// quantity kinds read this environment unless an explicit one is bound
// via quantity.Kind.WithEnvironment.
func Default() *Environment {
	defaultOnce.Do(func() {
		defaultEnv = NewEnvironment()
	})
	return defaultEnv
}
