package catalog

import (
	"log/slog"
	"sync"

	"github.com/zxzenius/z-units/errors"
	"github.com/zxzenius/z-units/unit"
)

// aliases maps alternative family names onto the registry that serves
// them. An aliased name resolves to the same *unit.Registry, so a
// lookup under either name sees the same units.
var aliases = map[string]string{
	"heat_flow":     EnergyFlow,
	"molar_entropy": MolarHeatCapacity,
	"mass_entropy":  MassHeatCapacity,
	"molar_heat":    MolarEnthalpy,
	"molar_energy":  MolarEnthalpy,
	"mass_enthalpy": MassHeat,
	"mass_energy":   MassHeat,
}

// Catalog is the assembled set of family registries. It is immutable
// after Load and safe for concurrent use.
type Catalog struct {
	registries map[string]*unit.Registry
	order      []string
	logger     *slog.Logger
}

// Option configures catalog assembly.
type Option func(*Catalog)

// WithLogger routes assembly debug logging to the given logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// Load assembles the full catalog from the static data table. Every
// family is registered with duplicate and base-unit checks enforced;
// a defective table surfaces as a classified error naming the family.
func Load(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		registries: make(map[string]*unit.Registry),
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, f := range families() {
		r := unit.NewRegistry(f.name)
		for _, e := range f.entries {
			if err := r.Register(e.unit, e.base); err != nil {
				return nil, errors.Wrap(err, "catalog", "Load",
					"register unit "+e.unit.Symbol()+" in family "+f.name)
			}
		}
		if r.BaseUnit() == nil {
			return nil, errors.WrapInvalid(errors.ErrInvalidUnit, "catalog", "Load",
				"family "+f.name+" has no base unit")
		}
		c.registries[f.name] = r
		c.order = append(c.order, f.name)
		if c.logger != nil {
			c.logger.Debug("registered unit family",
				"family", f.name,
				"units", len(r.Symbols()),
				"base", r.BaseUnit().Symbol())
		}
	}

	for alias, target := range aliases {
		r, ok := c.registries[target]
		if !ok {
			return nil, errors.WrapNotFound(errors.ErrUnitNotFound, "catalog", "Load",
				"alias "+alias+" targets unknown family "+target)
		}
		c.registries[alias] = r
	}
	return c, nil
}

// Registry returns the family registry for name, resolving aliases.
func (c *Catalog) Registry(name string) (*unit.Registry, error) {
	r, ok := c.registries[name]
	if !ok {
		return nil, errors.WrapNotFound(errors.ErrUnitNotFound, "catalog", "Registry",
			"look up family "+name)
	}
	return r, nil
}

// Names returns the canonical family names in catalog order. Aliases
// are not included.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Registries returns the canonical registries in catalog order.
func (c *Catalog) Registries() []*unit.Registry {
	rs := make([]*unit.Registry, 0, len(c.order))
	for _, name := range c.order {
		rs = append(rs, c.registries[name])
	}
	return rs
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default returns the shared catalog, assembling it on first use. The
// data table is static, so assembly failure is a programming error and
// panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load()
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
