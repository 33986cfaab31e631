package quantity

import "github.com/zxzenius/z-units/catalog"

// The built-in kinds, one per catalog family. They share the default
// environment; rebind with WithEnvironment for isolated tests.
var (
	Length              = kind(catalog.Length)
	Area                = kind(catalog.Area)
	Volume              = kind(catalog.Volume)
	Time                = kind(catalog.Time)
	Mass                = kind(catalog.Mass)
	Force               = kind(catalog.Force)
	Substance           = kind(catalog.Substance)
	Energy              = kind(catalog.Energy)
	Velocity            = kind(catalog.Velocity)
	Temperature         = kind(catalog.Temperature)
	DeltaTemperature    = kind(catalog.DeltaTemperature)
	Pressure            = kind(catalog.Pressure)
	MolarFlow           = kind(catalog.MolarFlow)
	MassFlow            = kind(catalog.MassFlow)
	VolumeFlow          = kind(catalog.VolumeFlow)
	EnergyFlow          = kind(catalog.EnergyFlow)
	MolarDensity        = kind(catalog.MolarDensity)
	MolarHeatCapacity   = kind(catalog.MolarHeatCapacity)
	ThermalConductivity = kind(catalog.ThermalConductivity)
	Viscosity           = kind(catalog.Viscosity)
	SurfaceTension      = kind(catalog.SurfaceTension)
	MassHeatCapacity    = kind(catalog.MassHeatCapacity)
	MassDensity         = kind(catalog.MassDensity)
	StandardGasFlow     = kind(catalog.StandardGasFlow)
	MolarEnthalpy       = kind(catalog.MolarEnthalpy)
	MolarVolume         = kind(catalog.MolarVolume)
	MassHeat            = kind(catalog.MassHeat)
	KinematicViscosity  = kind(catalog.KinematicViscosity)
	Fraction            = kind(catalog.Fraction)
	Dimensionless       = kind(catalog.Dimensionless)
)

// Alias kinds resolving to the same registries as their canonical
// counterparts, under the alternative family names.
var (
	HeatFlow     = kind("heat_flow")
	MolarEntropy = kind("molar_entropy")
	MassEntropy  = kind("mass_entropy")
	MolarHeat    = kind("molar_heat")
	MolarEnergy  = kind("molar_energy")
	MassEnthalpy = kind("mass_enthalpy")
	MassEnergy   = kind("mass_energy")
)

// kind binds a catalog family by name; the catalog is static, so a
// missing family is a programming error.
func kind(name string) Kind {
	r, err := catalog.Default().Registry(name)
	if err != nil {
		panic(err)
	}
	return NewKind(name, r)
}

// Kinds returns the canonical built-in kinds in catalog order. Alias
// kinds are excluded so cross-family scans visit each registry once.
func Kinds() []Kind {
	return []Kind{
		Length, Area, Volume, Time, Mass, Force, Substance, Energy,
		Velocity, Temperature, DeltaTemperature, Pressure, MolarFlow,
		MassFlow, VolumeFlow, EnergyFlow, MolarDensity,
		MolarHeatCapacity, ThermalConductivity, Viscosity,
		SurfaceTension, MassHeatCapacity, MassDensity, StandardGasFlow,
		MolarEnthalpy, MolarVolume, MassHeat, KinematicViscosity,
		Fraction, Dimensionless,
	}
}
