package catalog

import "github.com/zxzenius/z-units/unit"

// entry pairs a unit with its base designation inside a family.
type entry struct {
	unit *unit.Unit
	base bool
}

func base(u *unit.Unit) entry { return entry{unit: u, base: true} }
func reg(u *unit.Unit) entry  { return entry{unit: u} }

// family is one registry's worth of catalog data.
type family struct {
	name    string
	entries []entry
}

// Family name constants, in catalog iteration order. The order is the
// tie-break rule for cross-family symbol scans and must stay stable.
const (
	Length              = "length"
	Area                = "area"
	Volume              = "volume"
	Time                = "time"
	Mass                = "mass"
	Force               = "force"
	Substance           = "substance"
	Energy              = "energy"
	Velocity            = "velocity"
	Temperature         = "temperature"
	DeltaTemperature    = "delta_temperature"
	Pressure            = "pressure"
	MolarFlow           = "molar_flow"
	MassFlow            = "mass_flow"
	VolumeFlow          = "volume_flow"
	EnergyFlow          = "energy_flow"
	MolarDensity        = "molar_density"
	MolarHeatCapacity   = "molar_heat_capacity"
	ThermalConductivity = "thermal_conductivity"
	Viscosity           = "viscosity"
	SurfaceTension      = "surface_tension"
	MassHeatCapacity    = "mass_heat_capacity"
	MassDensity         = "mass_density"
	StandardGasFlow     = "standard_gas_flow"
	MolarEnthalpy       = "molar_enthalpy"
	MolarVolume         = "molar_volume"
	MassHeat            = "mass_heat"
	KinematicViscosity  = "kinematic_viscosity"
	Fraction            = "fraction"
	Dimensionless       = "dimensionless"
)

// families returns the complete data table. Factors convert to the
// family base unit; offsets appear only in the temperature scales and
// the gauge pressure units.
func families() []family {
	return []family{
		{Length, []entry{
			base(unit.NewBase("m")),
			reg(scaled("km", 1e3)),
			reg(scaled("dm", 1e-1)),
			reg(scaled("cm", 1e-2)),
			reg(scaled("mm", 1e-3)),
			reg(scaled("um", 1e-6)),
			reg(scaled("ft", footFactor)),
			reg(scaled("in", inchFactor)),
		}},
		{Area, []entry{
			base(unit.NewBase("m**2")),
			reg(scaled("km**2", 1e6)),
			reg(scaled("dm**2", 1e-2)),
			reg(scaled("cm**2", 1e-4)),
			reg(scaled("mm**2", 1e-6)),
			reg(scaled("um**2", 1e-12)),
			reg(scaled("ft**2", squareFootFactor)),
			reg(scaled("in**2", squareInchFactor)),
		}},
		{Volume, []entry{
			base(unit.NewBase("m**3")),
			reg(scaled("cm**3", 1e-6)),
			reg(scaled("mm**3", 1e-9)),
			reg(scaled("L", literFactor)),
			reg(scaled("mL", milliliterFactor)),
			reg(scaled("ft**3", cubicFootFactor)),
			reg(scaled("in**3", cubicInchFactor)),
			reg(scaled("gal", gallonFactor)),
			reg(scaled("bbl", barrelFactor)),
		}},
		{Time, []entry{
			base(unit.NewBase("s")),
			reg(scaled("min", minuteFactor)),
			reg(hourUnit),
			reg(dayUnit),
			reg(scaled("week", weekFactor)),
			reg(scaled("yr", yearFactor)),
			reg(scaled("mon", monthFactor)),
		}},
		{Mass, []entry{
			base(unit.NewBase("kg")),
			reg(scaled("g", gramFactor)),
			reg(scaled("t", tonneFactor)),
			reg(scaled("lb", poundFactor)),
		}},
		{Force, []entry{
			base(unit.NewBase("N")),
			reg(scaled("kg*m/s**2", 1)),
			reg(scaled("kN", 1e3)),
			reg(scaled("dyn", 1e-5)),
			reg(scaled("kgf", kilogramForceFactor)),
			reg(scaled("tonf", tonneForceFactor)),
			reg(scaled("lbf", poundForceFactor)),
		}},
		{Substance, []entry{
			base(unit.NewBase("kmol")),
			reg(scaled("mol", moleFactor)),
			reg(scaled("Nm**3", normalCubicMeterFactor)),
			reg(standardCubicMeter),
			reg(scaled("SCF", standardCubicFootFactor)),
			reg(scaled("MSCF", 1e3*standardCubicFootFactor)),
			reg(scaled("MMSCF", 1e6*standardCubicFootFactor)),
		}},
		{Energy, []entry{
			base(unit.NewBase("kJ")),
			reg(scaled("J", 1e-3)),
			reg(scaled("MJ", 1e3)),
			reg(scaled("GJ", 1e6)),
			reg(scaled("kW*h", hourFactor)),
			reg(scaled("kW*yr", yearFactor)),
			reg(scaled("cal", calorieFactor)),
			reg(scaled("kcal", kilocalorieFactor)),
			reg(scaled("Mcal", 1e6*calorieFactor)),
			reg(scaled("Gcal", 1e9*calorieFactor)),
			reg(scaled("MMkcal", millionKilocalorieFactor)),
			reg(scaled("Btu", britishThermalFactor)),
			reg(scaled("MMBtu", millionBtuFactor)),
			reg(scaled("lbf*ft", 1e-3*poundForceFactor*footFactor)),
		}},
		{Velocity, []entry{
			base(unit.NewBase("m/s")),
			reg(scaled("m/min", 1/minuteFactor)),
			reg(scaled("m/hr", 1/hourFactor)),
			reg(scaled("km/hr", 1e3/hourFactor)),
			reg(scaled("cm/s", 1e-2)),
			reg(scaled("ft/s", footFactor)),
			reg(scaled("ft/min", footFactor/minuteFactor)),
			reg(scaled("ft/hr", footFactor/hourFactor)),
		}},
		{Temperature, []entry{
			base(unit.NewBase("C")),
			reg(affine("K", 1, -zeroCelsiusInKelvin)),
			reg(affine("F", 5.0/9.0, -32*5.0/9.0)),
			reg(affine("R", 5.0/9.0, -zeroCelsiusInKelvin)),
		}},
		{DeltaTemperature, []entry{
			base(unit.NewBase("C")),
			reg(scaled("K", 1)),
			reg(scaled("R", deltaFahrenheitFactor)),
			reg(scaled("F", deltaFahrenheitFactor)),
		}},
		{Pressure, []entry{
			base(unit.NewBase("Pa")),
			reg(scaled("kPa", 1e3)),
			reg(scaled("MPa", 1e6)),
			reg(scaled("bar", 1e5)),
			reg(scaled("mbar", 1e2)),
			reg(scaled("atm", atmosphereFactor)),
			reg(scaled("kgf/cm**2", kgfPerCm2Factor)),
			reg(scaled("psi", psiFactor)),
			reg(scaled("lbf/ft**2", lbfPerFt2Factor)),
			reg(scaled("torr", torrFactor)),
			reg(scaled("mmHg_0C", torrFactor)),
			reg(scaled("inHg_32F", 3386.389)),
			reg(scaled("inHg_60F", 3376.85)),
			reg(gauge("kPag", 1e3)),
			reg(gauge("MPag", 1e6)),
			reg(gauge("barg", 1e5)),
			reg(gauge("mbarg", 1e2)),
			reg(gauge("kgf/cm**2_g", kgfPerCm2Factor)),
			reg(gauge("psig", psiFactor)),
			reg(gauge("lbf/ft**2_g", lbfPerFt2Factor)),
			reg(gauge("torr_g", torrFactor)),
			reg(gauge("mmHg_0C_g", torrFactor)),
			reg(gauge("inHg_32F_g", 3386.389)),
			reg(gauge("inHg_60F_g", 3376.85)),
		}},
		{MolarFlow, []entry{
			base(unit.NewBase("kmol/s")),
			reg(scaled("kmol/h", 1/hourFactor)),
			reg(scaled("kmol/min", 1/minuteFactor)),
			reg(scaled("Nm**3/h", normalCubicMeterFactor/hourFactor)),
			reg(scaled("Nm**3/d", normalCubicMeterFactor/dayFactor)),
			reg(standardCubicMeterPerHour),
			reg(standardCubicMeterPerDay),
			reg(scaled("mol/h", moleFactor/hourFactor)),
			reg(scaled("mol/min", moleFactor/minuteFactor)),
			reg(scaled("mol/s", moleFactor)),
			reg(scaled("SCFD", standardCubicFootFactor/dayFactor)),
			reg(scaled("MSCFH", 1e3*standardCubicFootFactor/hourFactor)),
			reg(scaled("MSCFD", 1e3*standardCubicFootFactor/dayFactor)),
			reg(scaled("MMSCFH", 1e6*standardCubicFootFactor/hourFactor)),
			reg(scaled("MMSCFD", 1e6*standardCubicFootFactor/dayFactor)),
		}},
		{MassFlow, []entry{
			base(unit.NewBase("kg/s")),
			reg(scaled("kg/h", 1/hourFactor)),
			reg(scaled("kg/min", 1/minuteFactor)),
			reg(scaled("kg/d", 1/dayFactor)),
			reg(scaled("t/d", tonneFactor/dayFactor)),
			reg(scaled("t/h", tonneFactor/hourFactor)),
			reg(scaled("t/yr", tonneFactor/yearFactor)),
			reg(scaled("g/h", gramFactor/hourFactor)),
			reg(scaled("g/min", gramFactor/minuteFactor)),
			reg(scaled("g/s", gramFactor)),
			reg(scaled("lb/h", poundFactor/hourFactor)),
			reg(scaled("klb/h", 1e3*poundFactor/hourFactor)),
			reg(scaled("lb/d", poundFactor/dayFactor)),
			reg(scaled("klb/d", 1e3*poundFactor/dayFactor)),
			reg(scaled("MMlb/d", 1e6*poundFactor/dayFactor)),
		}},
		{VolumeFlow, []entry{
			base(unit.NewBase("m**3/s")),
			reg(scaled("m**3/h", 1/hourFactor)),
			reg(scaled("m**3/min", 1/minuteFactor)),
			reg(scaled("m**3/d", 1/dayFactor)),
			reg(scaled("L/h", literFactor/hourFactor)),
			reg(scaled("L/d", literFactor/dayFactor)),
			reg(scaled("L/min", literFactor/minuteFactor)),
			reg(scaled("L/s", literFactor)),
			reg(scaled("mL/h", milliliterFactor/hourFactor)),
			reg(scaled("mL/min", milliliterFactor/minuteFactor)),
			reg(scaled("mL/s", milliliterFactor)),
			reg(scaled("bbl/d", barrelFactor/dayFactor)),
			reg(scaled("bbl/h", barrelFactor/hourFactor)),
			reg(scaled("MMgal/d", 1e6*gallonFactor/dayFactor)),
			reg(scaled("USGPM", gallonFactor/minuteFactor)),
			reg(scaled("USGPH", gallonFactor/hourFactor)),
			reg(scaled("ft**3/h", cubicFootFactor/hourFactor)),
			reg(scaled("ft**3/d", cubicFootFactor/dayFactor)),
		}},
		{EnergyFlow, []entry{
			base(unit.NewBase("kJ/s")),
			reg(scaled("kJ/h", 1/hourFactor)),
			reg(scaled("kJ/min", 1/minuteFactor)),
			reg(scaled("MJ/h", 1e3/hourFactor)),
			reg(scaled("GJ/h", 1e6/hourFactor)),
			reg(scaled("kW", 1)),
			reg(scaled("MW", 1e3)),
			reg(scaled("kcal/h", kilocalorieFactor/hourFactor)),
			reg(scaled("kcal/min", kilocalorieFactor/minuteFactor)),
			reg(scaled("kcal/s", kilocalorieFactor)),
			reg(scaled("MMkcal/h", millionKilocalorieFactor/hourFactor)),
			reg(scaled("cal/h", calorieFactor/hourFactor)),
			reg(scaled("cal/min", calorieFactor/minuteFactor)),
			reg(scaled("cal/s", calorieFactor)),
			reg(scaled("Btu/h", britishThermalFactor/hourFactor)),
			reg(scaled("MMBtu/h", millionBtuFactor/hourFactor)),
			reg(scaled("MMBtu/d", millionBtuFactor/dayFactor)),
			reg(scaled("hp", 0.745699)),
		}},
		{MolarDensity, []entry{
			base(unit.NewBase("kmol/m**3")),
			reg(scaled("mol/L", moleFactor/literFactor)),
			reg(scaled("mol/cm**3", moleFactor/1e-6)),
			reg(scaled("mol/mL", moleFactor/milliliterFactor)),
		}},
		{MolarHeatCapacity, []entry{
			base(unit.NewBase("kJ/(kmol*C)")),
			reg(scaled("kJ/(mol*C)", 1/moleFactor)),
			reg(scaled("kJ/(mol*K)", 1/moleFactor)),
			reg(scaled("kJ/(kmol*K)", 1)),
			reg(scaled("J/(mol*C)", 1)),
			reg(scaled("J/(mol*K)", 1)),
			reg(scaled("J/(kmol*C)", 1e-3)),
			reg(scaled("J/(kmol*K)", 1e-3)),
			reg(scaled("kcal/(mol*C)", kilocalorieFactor/moleFactor)),
			reg(scaled("kcal/(mol*K)", kilocalorieFactor/moleFactor)),
			reg(scaled("kcal/(kmol*C)", kilocalorieFactor)),
			reg(scaled("kcal/(kmol*K)", kilocalorieFactor)),
			reg(scaled("cal/(mol*C)", calorieFactor/moleFactor)),
			reg(scaled("cal/(mol*K)", calorieFactor/moleFactor)),
			reg(scaled("cal/(kmol*C)", calorieFactor)),
			reg(scaled("cal/(kmol*K)", calorieFactor)),
		}},
		{ThermalConductivity, []entry{
			base(unit.NewBase("W/(m*K)")),
			reg(scaled("Btu/(h*ft*F)",
				1e3*britishThermalFactor/(hourFactor*footFactor*deltaFahrenheitFactor))),
			reg(scaled("kcal/(m*h*C)", 1e3*kilocalorieFactor/hourFactor)),
			reg(scaled("cal/(cm*s*C)", 1e3*calorieFactor/1e-2)),
		}},
		{Viscosity, []entry{
			base(unit.NewBase("cP")),
			reg(scaled("mP", 0.1)),
			reg(scaled("microP", 1e-4)),
			reg(scaled("P", 100)),
			reg(scaled("Pa*s", 1000)),
			reg(scaled("lbf*s/ft**2", 1e3*poundForceFactor/squareFootFactor)),
			reg(scaled("lbm/(ft*s)", 1e3*poundFactor/footFactor)),
			reg(scaled("lbm/(ft*h)", 1e3*poundFactor/(footFactor*hourFactor))),
		}},
		{SurfaceTension, []entry{
			base(unit.NewBase("dyne/cm")),
			reg(scaled("dyn/cm", 1)),
			reg(scaled("lbf/ft", 1e3*poundForceFactor/footFactor)),
		}},
		{MassHeatCapacity, []entry{
			base(unit.NewBase("kJ/(kg*C)")),
			reg(scaled("kJ/(g*C)", 1/gramFactor)),
			reg(scaled("kJ/(g*K)", 1/gramFactor)),
			reg(scaled("kJ/(kg*K)", 1)),
			reg(scaled("J/(g*C)", 1)),
			reg(scaled("J/(g*K)", 1)),
			reg(scaled("J/(kg*C)", 1e-3)),
			reg(scaled("J/(kg*K)", 1e-3)),
			reg(scaled("kcal/(g*C)", kilocalorieFactor/gramFactor)),
			reg(scaled("kcal/(g*K)", kilocalorieFactor/gramFactor)),
			reg(scaled("kcal/(kg*C)", kilocalorieFactor)),
			reg(scaled("kcal/(kg*K)", kilocalorieFactor)),
			reg(scaled("cal/(g*C)", calorieFactor/gramFactor)),
			reg(scaled("cal/(g*K)", calorieFactor/gramFactor)),
			reg(scaled("cal/(kg*C)", calorieFactor)),
			reg(scaled("cal/(kg*K)", calorieFactor)),
		}},
		{MassDensity, []entry{
			base(unit.NewBase("kg/m**3")),
			reg(scaled("g/L", gramFactor/literFactor)),
			reg(scaled("g/cm**3", gramFactor/1e-6)),
			reg(scaled("g/mL", gramFactor/milliliterFactor)),
		}},
		{StandardGasFlow, []entry{
			base(unit.NewBase("Sm**3/s")),
			reg(scaled("Sm**3/h", 1/hourFactor)),
			reg(scaled("Sm**3/d", 1/dayFactor)),
			reg(scaled("Sm**3/min", 1/minuteFactor)),
		}},
		{MolarEnthalpy, []entry{
			base(unit.NewBase("kJ/kmol")),
			reg(scaled("kJ/mol", 1e3)),
			reg(scaled("J/mol", 1)),
			reg(scaled("J/kmol", 1e-3)),
			reg(scaled("MJ/kmol", 1e3)),
			reg(scaled("kcal/mol", kilocalorieFactor/moleFactor)),
			reg(scaled("kcal/kmol", kilocalorieFactor)),
			reg(scaled("cal/mol", calorieFactor/moleFactor)),
			reg(scaled("cal/kmol", calorieFactor)),
		}},
		{MolarVolume, []entry{
			base(unit.NewBase("m**3/kmol")),
			reg(scaled("m**3/mol", 1/moleFactor)),
			reg(scaled("L/mol", literFactor/moleFactor)),
			reg(scaled("cm**3/mol", 1e-6/moleFactor)),
			reg(scaled("mL/mol", milliliterFactor/moleFactor)),
		}},
		{MassHeat, []entry{
			base(unit.NewBase("kJ/kg")),
			reg(scaled("kJ/g", 1e3)),
			reg(scaled("J/g", 1)),
			reg(scaled("J/kg", 1e-3)),
			reg(scaled("MJ/kg", 1e3)),
			reg(scaled("kcal/g", kilocalorieFactor/gramFactor)),
			reg(scaled("kcal/kg", kilocalorieFactor)),
			reg(scaled("cal/g", calorieFactor/gramFactor)),
			reg(scaled("cal/kg", calorieFactor)),
			reg(scaled("Btu/lb", britishThermalFactor/poundFactor)),
		}},
		{KinematicViscosity, []entry{
			base(unit.NewBase("cSt")),
		}},
		{Fraction, []entry{
			base(dimensionless),
			reg(scaled("%", 1e-2)),
			reg(scaled("ppm", 1e-6)),
		}},
		{Dimensionless, []entry{
			base(dimensionless),
		}},
	}
}
