// Package catalog holds the static unit data table: every unit
// definition and its grouping into per-family registries. The catalog
// is data the conversion engine consumes; the numeric definitions are
// mechanical and live here so the unit and quantity packages stay free
// of them. It is built once and shared via Default.
package catalog

import (
	"github.com/zxzenius/z-units/config"
	"github.com/zxzenius/z-units/unit"
)

// Physical constants used by the definitions.
const (
	// standardGravity in m/s2, ties kgf/tonf/lbf to their mass units.
	standardGravity = 9.80665
	// molarVolumeNormal is the molar volume of an ideal gas at normal
	// conditions (0 degC, 1 atm) in m3/kmol.
	molarVolumeNormal = 22.414
	// zeroCelsiusInKelvin anchors the standard-condition temperature
	// correction.
	zeroCelsiusInKelvin = 273.15
)

// Base-relative conversion factors shared by several definitions.
// Derived the way the source data derives them (a barrel is 42
// gallons, a psi is a pound-force per square inch) so the chain of
// definitions stays auditable against reference data.
var (
	// length, base m
	footFactor = 0.3048
	inchFactor = 0.0254

	// time, base s
	minuteFactor = 60.0
	hourFactor   = 60 * minuteFactor
	dayFactor    = 24 * hourFactor
	weekFactor   = 7 * dayFactor
	yearFactor   = 8760 * hourFactor
	monthFactor  = yearFactor / 12

	// volume, base m3
	literFactor      = 1e-3
	milliliterFactor = 1e-6
	cubicFootFactor  = footFactor * footFactor * footFactor
	cubicInchFactor  = inchFactor * inchFactor * inchFactor
	gallonFactor     = 231 * cubicInchFactor
	barrelFactor     = 42 * gallonFactor

	// mass, base kg
	gramFactor  = 1e-3
	tonneFactor = 1e3
	poundFactor = 0.45359237

	// force, base N
	kilogramForceFactor = standardGravity
	tonneForceFactor    = tonneFactor * standardGravity
	poundForceFactor    = poundFactor * standardGravity

	// substance, base kmol
	moleFactor             = 1e-3
	normalCubicMeterFactor = 1 / molarVolumeNormal
	// SCF is at 60 degF, so the normal-condition factor is corrected
	// by the temperature ratio.
	temperature60FInKelvin  = (60.0-32.0)*5.0/9.0 + zeroCelsiusInKelvin
	standardCubicFootFactor = normalCubicMeterFactor * cubicFootFactor *
		zeroCelsiusInKelvin / temperature60FInKelvin

	// energy, base kJ
	calorieFactor            = 4.184e-3
	kilocalorieFactor        = 1e3 * calorieFactor
	britishThermalFactor     = 1.055056
	millionBtuFactor         = 1e6 * britishThermalFactor
	millionKilocalorieFactor = 1e6 * kilocalorieFactor

	// pressure, base Pa
	squareCentimeterFactor = 1e-4
	squareFootFactor       = footFactor * footFactor
	squareInchFactor       = inchFactor * inchFactor
	atmosphereFactor       = config.DefaultAtmosphericPressure
	kgfPerCm2Factor        = kilogramForceFactor / squareCentimeterFactor
	psiFactor              = poundForceFactor / squareInchFactor
	lbfPerFt2Factor        = poundForceFactor / squareFootFactor
	torrFactor             = atmosphereFactor / 760

	// delta temperature, base C
	deltaFahrenheitFactor = 5.0 / 9.0
)

// standardCubicMeterFactor is the one configuration-dependent factor:
// a standard cubic meter rescales the normal molar volume from 0 degC
// to the configured standard temperature. Read at conversion time.
func standardCubicMeterFactor(env *config.Environment) float64 {
	return normalCubicMeterFactor * zeroCelsiusInKelvin /
		(zeroCelsiusInKelvin + env.StandardTemperature())
}

// atmosphericOffset is the gauge-pressure zero point: local
// atmospheric pressure in Pa, read at conversion time.
func atmosphericOffset(env *config.Environment) float64 {
	return env.LocalAtmosphericPressure()
}

// scaled defines a pure ratio unit.
func scaled(symbol string, factor float64) *unit.Unit {
	return unit.MustNew(symbol, unit.Fixed(factor), unit.Fixed(0))
}

// affine defines a unit with a fixed offset (temperature scales).
func affine(symbol string, factor, offset float64) *unit.Unit {
	return unit.MustNew(symbol, unit.Fixed(factor), unit.Fixed(offset))
}

// gauge defines a pressure unit whose zero point is the local
// atmospheric pressure.
func gauge(symbol string, factor float64) *unit.Unit {
	return unit.MustNew(symbol, unit.Fixed(factor), unit.Dynamic(atmosphericOffset))
}

// mustCompose unwraps a static composition, panicking on a defective
// definition; only catalog-time compositions go through it. The
// caller renames the result to its catalog symbol.
func mustCompose(u *unit.Unit, err error) *unit.Unit {
	if err != nil {
		panic(err)
	}
	return u
}

// Standard-condition units, shared between the substance and molar
// flow families.
var (
	standardCubicMeter = unit.MustNew("Sm**3",
		unit.Dynamic(standardCubicMeterFactor), unit.Fixed(0))
	hourUnit = scaled("hr", hourFactor)
	dayUnit  = scaled("day", dayFactor)

	standardCubicMeterPerHour = mustCompose(standardCubicMeter.Div(hourUnit)).Renamed("Sm**3/h")
	standardCubicMeterPerDay  = mustCompose(standardCubicMeter.Div(dayUnit)).Renamed("Sm**3/d")

	dimensionless = unit.NewBase("")
)
