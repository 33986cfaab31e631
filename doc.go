// Package zunits is a unit conversion library for process engineering
// quantities: pressures, temperatures, flows, energies and the other
// families a simulation stack trades in.
//
// # Architecture
//
// The module is organized as small focused packages:
//
//   - errors: classified error types shared by every package
//   - config: the runtime environment (standard temperature, local
//     atmospheric pressure) that condition-dependent units read at
//     conversion time
//   - unit: the Unit value, symbol styles, factor composition and the
//     per-family Registry
//   - catalog: the static data table assembling every built-in family
//   - quantity: value-with-unit arithmetic, comparison and the
//     cross-family Convert helper
//   - metric: optional Prometheus instrumentation for conversions
//
// # Basic Usage
//
// Converting through a known family:
//
//	q, err := quantity.Pressure.New(100, "kPa")
//	if err != nil {
//		return err
//	}
//	gauge, err := q.To("kPag")
//
// Or without naming the family:
//
//	q, err := quantity.Convert(1, "m", "ft")
//
// Gauge pressures and standard-condition gas volumes read the live
// environment on every conversion:
//
//	config.Default().SetStandardTemperature(15)
package zunits
