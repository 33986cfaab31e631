package quantity

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zxzenius/z-units/config"
	"github.com/zxzenius/z-units/errors"
	"github.com/zxzenius/z-units/unit"
)

func TestKind_New(t *testing.T) {
	q, err := Length.New(100, "cm")
	require.NoError(t, err)
	assert.Equal(t, "cm", q.Unit().Symbol())
	v, ok := q.Value()
	assert.True(t, ok)
	assert.Equal(t, 100.0, v)
}

func TestKind_New_EmptySymbolBindsBase(t *testing.T) {
	q, err := Length.New(1, "")
	require.NoError(t, err)
	assert.Equal(t, "m", q.Unit().Symbol())
}

func TestKind_New_UnknownSymbol(t *testing.T) {
	_, err := Length.New(1, "furlong")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnitNotFound)
}

func TestKind_Parse(t *testing.T) {
	q, err := Length.Parse("1000 mm")
	require.NoError(t, err)
	assert.Equal(t, "1000 mm", q.String())

	q, err = Length.Parse("42")
	require.NoError(t, err)
	assert.Equal(t, "m", q.Unit().Symbol())

	_, err = Length.Parse("one meter")
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

// The separator space is optional: the symbol may trail the number
// directly.
func TestKind_Parse_UnseparatedSuffix(t *testing.T) {
	cases := []struct {
		kind Kind
		text string
		want string
	}{
		{Length, "1000mm", "1000 mm"},
		{Length, "1e3mm", "1000 mm"},
		{Temperature, "-40F", "-40 F"},
		{Pressure, "2.5kPag", "2.5 kPag"},
	}
	for _, tc := range cases {
		q, err := tc.kind.Parse(tc.text)
		require.NoError(t, err, tc.text)
		assert.Equal(t, tc.want, q.String(), tc.text)
	}

	_, err := Length.Parse("mm")
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestQuantity_To_Temperature(t *testing.T) {
	temp := Temperature.WithEnvironment(config.NewEnvironment())

	q, err := temp.New(25, "C")
	require.NoError(t, err)

	cases := []struct {
		symbol string
		want   float64
	}{
		{"K", 298.15},
		{"F", 77},
		{"R", 536.67},
	}
	for _, tc := range cases {
		got, err := q.To(tc.symbol)
		require.NoError(t, err, tc.symbol)
		v, _ := got.Value()
		assert.InDelta(t, tc.want, v, 1e-9, tc.symbol)
	}

	k, err := temp.New(300, "K")
	require.NoError(t, err)
	f, err := k.To("F")
	require.NoError(t, err)
	v, _ := f.Value()
	assert.InDelta(t, 80.33, v, 1e-9)
}

func TestQuantity_To_GaugePressure(t *testing.T) {
	env := config.NewEnvironment()
	pressure := Pressure.WithEnvironment(env)

	q, err := pressure.New(100, "kPa")
	require.NoError(t, err)

	gauge, err := q.To("kPag")
	require.NoError(t, err)
	v, _ := gauge.Value()
	assert.InDelta(t, -1.325, v, 1e-9)

	require.NoError(t, env.SetLocalAtmosphericPressure(50e3))
	gauge, err = q.To("kPag")
	require.NoError(t, err)
	v, _ = gauge.Value()
	assert.InDelta(t, 50, v, 1e-9)
}

func TestQuantity_To_MolarFlow(t *testing.T) {
	flow := MolarFlow.WithEnvironment(config.NewEnvironment())

	q, err := flow.New(1, "kmol/s")
	require.NoError(t, err)

	normal, err := q.To("Nm**3/h")
	require.NoError(t, err)
	v, _ := normal.Value()
	assert.InDelta(t, 80690.4, v, 1e-6)

	standard, err := q.To("Sm**3/h")
	require.NoError(t, err)
	v, _ = standard.Value()
	assert.InDelta(t, 80690.4*(273.15+20)/273.15, v, 1e-6)
}

// Converted results must follow the live environment and snap back
// exactly after Reset.
func TestQuantity_To_TracksEnvironment(t *testing.T) {
	env := config.NewEnvironment()
	flow := MolarFlow.WithEnvironment(env)

	q, err := flow.New(1, "kmol/s")
	require.NoError(t, err)

	before, err := q.To("Sm**3/h")
	require.NoError(t, err)

	require.NoError(t, env.SetStandardTemperature(15))
	at15, err := q.To("Sm**3/h")
	require.NoError(t, err)
	v15, _ := at15.Value()
	assert.InDelta(t, 80690.4*(273.15+15)/273.15, v15, 1e-6)

	env.Reset()
	after, err := q.To("Sm**3/h")
	require.NoError(t, err)
	vBefore, _ := before.Value()
	vAfter, _ := after.Value()
	assert.Equal(t, vBefore, vAfter)
}

func TestQuantity_To_SameUnitShortCircuit(t *testing.T) {
	q, err := Length.New(5, "cm")
	require.NoError(t, err)
	same, err := q.To("cm")
	require.NoError(t, err)
	assert.True(t, q.Equal(same))
}

func TestQuantity_To_EmptyValue(t *testing.T) {
	_, err := Length.Empty().To("cm")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNoValue)

	// Target resolution is checked before the value.
	_, err = Length.Empty().To("furlong")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnitNotFound)
}

func TestQuantity_ToBase(t *testing.T) {
	q, err := Length.New(1000, "mm")
	require.NoError(t, err)

	b, err := q.ToBase()
	require.NoError(t, err)
	assert.Equal(t, "1 m", b.String())

	v, err := q.BaseValue()
	require.NoError(t, err)
	assert.InDelta(t, 1, v, 1e-12)
}

func TestQuantity_Equal(t *testing.T) {
	a := Length.MustNew(200, "cm")
	b := Length.MustNew(2000, "mm")
	c := Length.MustNew(3, "m")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, Length.Empty().Equal(Length.Empty()))
	assert.False(t, a.Equal(Length.Empty()))

	// Different kinds never compare equal, even at equal numbers.
	assert.False(t, Length.MustNew(1, "m").Equal(Mass.MustNew(1, "kg")))
}

func TestQuantity_Compare(t *testing.T) {
	a := Length.MustNew(200, "cm")
	b := Length.MustNew(1000, "mm")

	ge, err := a.GreaterOrEqual(b)
	require.NoError(t, err)
	assert.True(t, ge)

	lt, err := a.Less(b)
	require.NoError(t, err)
	assert.False(t, lt)

	le, err := b.LessOrEqual(a)
	require.NoError(t, err)
	assert.True(t, le)

	gt, err := b.Greater(a)
	require.NoError(t, err)
	assert.False(t, gt)
}

func TestQuantity_Compare_KindMismatch(t *testing.T) {
	_, err := Length.MustNew(1, "m").Compare(Mass.MustNew(1, "kg"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrKindMismatch)
}

func TestQuantity_Compare_EmptyValue(t *testing.T) {
	_, err := Length.Empty().Compare(Length.MustNew(1, "m"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNoValue)
}

func TestQuantity_Scale(t *testing.T) {
	q := Length.MustNew(3, "m")
	assert.True(t, q.Scale(2).Equal(Length.MustNew(6, "m")))

	// Scaling an empty quantity stays empty.
	_, ok := Length.Empty().Scale(2).Value()
	assert.False(t, ok)
}

func TestQuantity_Format(t *testing.T) {
	q := MolarHeatCapacity.MustNew(1.5, "kJ/(kmol*C)")
	assert.Equal(t, "1.5 kJ/kmol-C", q.Format(unit.StyleQuick))
	assert.Equal(t, "1.5 kJ / (kmol * C)", q.Format(unit.StyleDefined))
	assert.Equal(t, "<empty>", MolarHeatCapacity.Empty().Format(unit.StyleQuick))

	assert.Equal(t, "0.42", Dimensionless.MustNew(0.42, "").String())
}

func TestConvert(t *testing.T) {
	q, err := Convert(1, "m", "ft")
	require.NoError(t, err)
	v, _ := q.Value()
	assert.InDelta(t, 3.2808399, v, 1e-7)
}

func TestConvert_NoMatchingFamily(t *testing.T) {
	_, err := Convert(1, "m", "xyz")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNoMatchingFamily)

	// Symbols from different families never match one registry.
	_, err = Convert(1, "m", "kg")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNoMatchingFamily)
}

func TestConvert_PicksFirstFamilyInOrder(t *testing.T) {
	// C appears in temperature and delta_temperature; temperature
	// comes first, so the affine scale wins.
	q, err := Convert(25, "C", "F")
	require.NoError(t, err)
	v, _ := q.Value()
	assert.InDelta(t, 77, v, 1e-9)
}

func TestAliasKinds_ShareRegistries(t *testing.T) {
	assert.Same(t, EnergyFlow.Registry(), HeatFlow.Registry())
	assert.Same(t, MolarEnthalpy.Registry(), MolarHeat.Registry())
	assert.Same(t, MolarEnthalpy.Registry(), MolarEnergy.Registry())
	assert.Same(t, MassHeat.Registry(), MassEnthalpy.Registry())
	assert.Same(t, MassHeat.Registry(), MassEnergy.Registry())
	assert.Same(t, MolarHeatCapacity.Registry(), MolarEntropy.Registry())
	assert.Same(t, MassHeatCapacity.Registry(), MassEntropy.Registry())
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []observation
}

type observation struct {
	kind, from, to string
	err            error
}

func (r *recordingObserver) ObserveConversion(kind, from, to string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, observation{kind, from, to, err})
}

func TestObserver(t *testing.T) {
	rec := &recordingObserver{}
	length := Length.WithObserver(rec)

	q, err := length.New(1, "m")
	require.NoError(t, err)
	_, err = q.To("ft")
	require.NoError(t, err)
	_, err = q.To("furlong")
	require.Error(t, err)

	require.Len(t, rec.calls, 2)
	assert.Equal(t, observation{"length", "m", "ft", nil}, rec.calls[0])
	assert.Equal(t, "furlong", rec.calls[1].to)
	assert.ErrorIs(t, rec.calls[1].err, errors.ErrUnitNotFound)
}

func TestWithEnvironment_DoesNotMutateOriginal(t *testing.T) {
	env := config.NewEnvironment()
	require.NoError(t, env.SetStandardTemperature(0))

	bound := Substance.WithEnvironment(env)
	assert.Nil(t, Substance.env)
	assert.Same(t, env, bound.env)
}
