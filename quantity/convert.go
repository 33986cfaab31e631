package quantity

import (
	"github.com/zxzenius/z-units/errors"
)

// Convert translates value from one unit symbol to another without
// naming the family: the built-in kinds are scanned in catalog order
// and the first whose registry contains both symbols performs the
// conversion. When no family holds both, ErrNoMatchingFamily is
// reported.
func Convert(value float64, from, to string) (Quantity, error) {
	for _, k := range Kinds() {
		if !k.registry.Contains(from) || !k.registry.Contains(to) {
			continue
		}
		q, err := k.New(value, from)
		if err != nil {
			return Quantity{}, err
		}
		return q.To(to)
	}
	return Quantity{}, errors.WrapNotFound(errors.ErrNoMatchingFamily,
		"quantity", "Convert", "match "+from+" and "+to+" to one family")
}
